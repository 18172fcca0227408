package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-identity/internal/adapter"
	"github.com/MKhiriev/go-identity/internal/client"
	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/tui"
	"github.com/MKhiriev/go-identity/models"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	level := ""
	if cfg != nil {
		level = cfg.LogLevel
	}
	log := logger.NewConsoleLogger("identity-client", level)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	prompt := func(title string, withEmail bool) (models.Credentials, error) {
		return tui.PromptCredentials(title, withEmail, os.Stdin, os.Stderr)
	}

	var copyToken client.Clipboard
	if !clipboard.Unsupported {
		copyToken = clipboard.WriteAll
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, prompt, copyToken, os.Getenv("IDENTITY_TOKEN"), os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
