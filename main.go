package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/abobadilla02/portfolio/internal/config"
	"github.com/abobadilla02/portfolio/internal/logger"
	"github.com/abobadilla02/portfolio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, zap.String("service", "portfolio"))
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	srv, err := server.New(cfg, logg)
	if err != nil {
		logg.Fatal("Failed to build server", zap.Error(err))
	}

	if err := srv.Run(context.Background()); err != nil {
		logg.Fatal("Server stopped", zap.Error(err))
	}
}
