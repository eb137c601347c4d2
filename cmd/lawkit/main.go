// Command lawkit generates Korean privacy policies and terms of
// service from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/config/file"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/remote"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driving/cli"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
	"github.com/lawkit-dev/lawkit-cli/internal/core/services"
	"github.com/lawkit-dev/lawkit-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := sqlite.NewStore(cfg.GetString("storage.data_dir"))
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()

	// Remote generation is optional; without a configured base URL all
	// documents are assembled locally.
	var generator driven.RemoteGenerator
	if baseURL := cfg.GetString("remote.base_url"); baseURL != "" {
		client, err := remote.NewClient(remote.Config{BaseURL: baseURL})
		if err != nil {
			return fmt.Errorf("create remote client: %w", err)
		}
		generator = client
		logger.Debug("remote generation enabled: %s", baseURL)
	}

	policyService, err := services.NewPolicyService(ctx, store, generator)
	if err != nil {
		return fmt.Errorf("create policy service: %w", err)
	}

	termsService, err := services.NewTermsService(ctx, store)
	if err != nil {
		return fmt.Errorf("create terms service: %w", err)
	}

	exportService := services.NewExportService(
		policyService,
		termsService,
		export.NewRenderer(),
		export.NewClipboard(),
		export.NewPDFPrinter(),
	)

	cli.SetVersion(version)
	cli.SetServices(policyService, termsService, exportService)

	return cli.Execute()
}
