package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/app"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Local development keeps its settings in .env; deployments inject
	// real environment variables, so a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	infra, err := app.NewInfrastructure(ctx, *cfg)
	if err != nil {
		log.Fatalf("Failed to initialize infrastructure: %v", err)
	}

	application := app.NewApp(infra, cfg)

	if err := application.Run(ctx); err != nil {
		infra.Logger().Fatal("Application failed", zap.Error(err))
	}
}
