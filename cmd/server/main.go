package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/config"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/server"
)

func main() {
	cfg := config.LoadOrDefault()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := srv.Run(ctx)

	if err := srv.Close(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	if runErr != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", runErr)
	}
}
