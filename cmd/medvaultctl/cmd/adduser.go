package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"medvault/internal/app/server/config"
	"medvault/internal/domain/user"
	"medvault/internal/infrastructure/storage/postgres"
	"medvault/internal/utils/logger"
)

var (
	addLogin string
	addRole  string
)

var adduserCmd = &cobra.Command{
	Use:   "adduser",
	Short: "Provision a staff account",
	Long: `Creates a staff account directly in the database. Intended for
bootstrapping the first administrator; further accounts can be created
through the API.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		role, err := user.ParseRole(addRole)
		if err != nil {
			return fmt.Errorf("unknown role %q (expected administrator, clinician or frontdesk)", addRole)
		}

		fmt.Printf("Password for %s: ", addLogin)
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		repeat, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(repeat) {
			return fmt.Errorf("passwords do not match")
		}

		cfg := config.MustLoad()
		log := logger.New(cfg.Env)

		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
		defer storage.Close()

		service := user.NewService(postgres.NewUserRepository(storage.Pool(), log), user.NewAccountValidator(), log)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		id, err := service.Register(ctx, addLogin, string(password), role)
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		color.Green("Created %s account %q (id %d)", role, addLogin, id)
		return nil
	},
}

func init() {
	adduserCmd.Flags().StringVar(&addLogin, "login", "", "account login")
	adduserCmd.Flags().StringVar(&addRole, "role", "", "account role: administrator, clinician or frontdesk")
	_ = adduserCmd.MarkFlagRequired("login")
	_ = adduserCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(adduserCmd)
}
