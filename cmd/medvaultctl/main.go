package main

import "medvault/cmd/medvaultctl/cmd"

func main() {
	cmd.Execute()
}
