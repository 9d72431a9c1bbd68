package main

import (
	"net/http"
	"os"

	"medvault/internal/app/server/api"
	"medvault/internal/app/server/config"
	"medvault/internal/infrastructure/storage/postgres"
	"medvault/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("init storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	mux, err := api.New(cfg, storage, log)
	if err != nil {
		log.Error("init api", "error", err)
		os.Exit(1)
	}

	log.Info("starting server", "address", cfg.Server.RunAddress, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
