package main

import (
	"MonitoreoBackend/internal/config"
	"MonitoreoBackend/pkg/log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", envErr)
	}

	validator := config.NewValidator()
	cfg, err := config.LoadAppConfig(validator)
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	logger.SetLevel(log.LevelFor(cfg.Debug))
	if cfg.InsecureSecretKey() {
		logger.Warn("SECRET_KEY is still the default value, set a unique secret for this deployment")
	}

	fiberApp := config.NewFiber(logger, cfg.Debug)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithAppConfig(cfg),
		config.WithDatabase(),
		config.WithMiddleware(),
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

	logger.Infof("Server started on port %s", cfg.Port)

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
