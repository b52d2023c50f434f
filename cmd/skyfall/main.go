package main

import (
	"log/slog"
	"net/http"
	"os"

	"skyfall/config"
	"skyfall/logging"
	"skyfall/network"
	"skyfall/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.Env)

	manager := session.NewManager()
	server := network.NewServer(manager, cfg.AllowedOrigin)

	mux := http.NewServeMux()
	server.Register(mux)

	slog.Info("listening", "addr", cfg.Addr, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		slog.Error("serve", "err", err)
		os.Exit(1)
	}
}
