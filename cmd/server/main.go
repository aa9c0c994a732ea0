package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/medlens/config"
	"github.com/adrianliechti/medlens/pkg/otel"
	"github.com/adrianliechti/medlens/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")

	flag.Parse()

	if otel.EnableDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if otel.EnableTelemetry {
		shutdown, err := otel.Setup(ctx, "medlens", version)

		if err != nil {
			slog.Error("failed to set up telemetry", "error", err)
			os.Exit(1)
		}

		defer shutdown(context.Background())
	}

	cfg, err := loadConfig(*configFlag)

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Parse(path)
	}

	for _, name := range []string{"AZURE_FORMRECOGNIZER_ENDPOINT", "AZURE_FORMRECOGNIZER_KEY", "GROQ_API_KEY"} {
		if os.Getenv(name) == "" {
			slog.Warn("environment variable not set", "name", name)
		}
	}

	return config.FromEnvironment()
}
