package main

import (
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/stubserver"

	"github.com/joho/godotenv"
)

func main() {
	// .envは任意
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadStub()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	srv := stubserver.New(cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Info("stub server starting", "addr", addr)
	if err := srv.Start(addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
