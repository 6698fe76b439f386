package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-proton-tweaks/internal/adapter"
	"github.com/MKhiriev/go-proton-tweaks/internal/app"
	"github.com/MKhiriev/go-proton-tweaks/internal/client"
	"github.com/MKhiriev/go-proton-tweaks/internal/config"
	"github.com/MKhiriev/go-proton-tweaks/internal/gpu"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/output"
	"github.com/MKhiriev/go-proton-tweaks/internal/service"
	"github.com/MKhiriev/go-proton-tweaks/internal/store"
	"github.com/MKhiriev/go-proton-tweaks/internal/tui"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "protontweaks"

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(role, "").Fatal().Err(err).
			Str("reason", app.UserMessage(err)).
			Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		if errors.Is(err, client.ErrMissingCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, client.Usage())
		}
		stop()
		log.Fatal().Err(err).
			Str("reason", app.UserMessage(err)).
			Msg("command failed")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Catalog, log)
	if err != nil {
		return fmt.Errorf("create catalog adapter: %w", err)
	}

	detector := gpu.NewDetector(newQuerier(cfg.GPU), log)

	var storages *store.Storages
	if client.NeedsStore(cfg.Args) {
		storages, err = store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return fmt.Errorf("create local storage: %w", err)
		}
		defer storages.Close()
	}

	services := service.NewServices(catalog, detector, storages, log)
	printer := output.NewPrinter(os.Stdout, cfg.Output.JSON)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	browser := tui.New(services.TweaksService, log)

	cli, err := client.NewApp(services, printer, browser, *cfg, buildInfo, log)
	if err != nil {
		return err
	}

	return cli.Run(ctx)
}

// newQuerier returns a fixed-driver querier when a driver is forced, and
// the vulkaninfo querier otherwise.
func newQuerier(cfg config.GPU) gpu.AdapterQuerier {
	if cfg.Driver != "" {
		return gpu.NewStaticQuerier(cfg.Driver)
	}
	return gpu.NewVulkanQuerier(cfg.VulkanInfoPath)
}
