package main

import (
	"Fintar/internal/config"
	"Fintar/pkg/log"
	"Fintar/pkg/redis"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.NewLogger().Fatalf("Error loading .env file: %v", err)
	}
	logger := log.NewLogger()

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	chatConfig, err := config.LoadChatConfig(validator)
	if err != nil {
		logger.Fatal(err)
	}

	var cache redis.ICache
	if os.Getenv("REDIS_ADDRESS") != "" {
		cache = redis.New()
	}

	completionClient, err := config.NewCompletionClient(context.Background(), chatConfig, cache, logger)
	if err != nil {
		logger.Fatalf("Error creating completion client: %v", err)
	}

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisCache(cache),
		config.WithMiddleware(),
		config.WithUtils(),
		config.WithChatConfig(chatConfig),
		config.WithCompletionClient(completionClient),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
