package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "cardstudio/docs/swagger"
	"cardstudio/internal/app"
)

// @title CardStudio API
// @version 1.0
// @description CardStudio API for people management, card templates, AI card generation, and celebration emails.
// @BasePath /
// @schemes http https
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}
