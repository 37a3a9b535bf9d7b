// Package main is the entry point for termdog.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/termdog/internal/daemon"
	"github.com/samdwyer/termdog/internal/logger"
	"github.com/samdwyer/termdog/internal/telemetry"
	"github.com/samdwyer/termdog/internal/tty"
	"github.com/samdwyer/termdog/internal/walk"
)

func main() {
	logger.Init(os.Stderr)

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		logger.Log.Debugf("Note: .env file not loaded: %v", err)
	}

	if !daemon.IsChild() {
		pid, err := daemon.Start(os.Stdout)
		if err != nil {
			logger.Log.Fatalf("Failed to start daemon: %v", err)
		}
		logger.Log.WithField("pid", pid).Debug("Daemon started")
		return
	}

	if err := run(context.Background()); err != nil {
		logger.Log.Fatalf("termdog: %v", err)
	}
}

// run is the detached child: it owns the inherited terminal until the
// process is killed.
func run(ctx context.Context) error {
	setupOTelEnv()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.Warnf("Telemetry setup failed, running without it: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.Errorf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	f, err := daemon.Inherited()
	if err != nil {
		return fmt.Errorf("session setup: %w", err)
	}
	term := tty.New(f)
	defer term.Close()

	if err := term.MakeRaw(); err != nil {
		return err
	}
	defer term.Restore()

	return walk.New(term, term, walk.DefaultConfig()).Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_TERMDOG_API_KEY")
	if apiKey == "" {
		return
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_TERMDOG_DATASET")
	if dataset == "" {
		dataset = "termdog"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
