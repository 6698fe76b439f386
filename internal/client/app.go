package client

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-proton-tweaks/internal/config"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/internal/output"
	"github.com/MKhiriev/go-proton-tweaks/internal/service"
	"github.com/MKhiriev/go-proton-tweaks/internal/workers"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

// App runs one CLI command.
type App struct {
	services  *service.Services
	printer   *output.Printer
	browser   Browser
	args      []string
	workers   config.Workers
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp validates the command in cfg.Args and returns an App ready to run
// it.
func NewApp(services *service.Services, printer *output.Printer, browser Browser, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if len(cfg.Args) == 0 {
		return nil, ErrMissingCommand
	}
	if !slices.Contains(commands, cfg.Args[0]) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cfg.Args[0])
	}

	return &App{
		services:  services,
		printer:   printer,
		browser:   browser,
		args:      cfg.Args,
		workers:   cfg.Workers,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	command := a.args[0]
	log := a.logger.With().Str("command", command).Logger()
	ctx = log.WithContext(ctx)

	log.Debug().Strs("args", a.args[1:]).Msg("running command")

	switch command {
	case CommandApps:
		return a.apps(ctx)
	case CommandIDs:
		return a.ids(ctx)
	case CommandApp:
		return a.app(ctx)
	case CommandResolve:
		return a.resolve(ctx)
	case CommandGPU:
		return a.printer.Vendor(a.services.TweaksService.Vendor(ctx))
	case CommandSync:
		return a.sync(ctx)
	case CommandSearch:
		return a.search(ctx)
	case CommandWatch:
		return a.watch(ctx)
	case CommandBrowse:
		if a.browser == nil {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
		}
		return a.browser.Browse(ctx)
	case CommandVersion:
		return a.printer.BuildInfo(a.buildInfo)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) apps(ctx context.Context) error {
	list, err := a.services.TweaksService.AppsList(ctx)
	if err != nil {
		return err
	}
	return a.printer.AppsList(list)
}

func (a *App) ids(ctx context.Context) error {
	ids, err := a.services.TweaksService.AppIDs(ctx)
	if err != nil {
		return err
	}
	return a.printer.IDs(ids)
}

func (a *App) app(ctx context.Context) error {
	id, err := a.operand("app id")
	if err != nil {
		return err
	}

	app, err := a.services.TweaksService.App(ctx, id)
	if err != nil {
		return err
	}
	return a.printer.App(app)
}

func (a *App) resolve(ctx context.Context) error {
	id, err := a.operand("app id")
	if err != nil {
		return err
	}

	app, err := a.services.TweaksService.App(ctx, id)
	if err != nil {
		return err
	}

	vendor := a.services.TweaksService.Vendor(ctx)
	return a.printer.Resolved(app.ID, vendor, service.Resolve(app, vendor))
}

func (a *App) sync(ctx context.Context) error {
	if a.services.SyncService == nil {
		return ErrStoreUnavailable
	}

	result, err := a.services.SyncService.Sync(ctx)
	if err != nil {
		return err
	}
	return a.printer.SyncResult(result)
}

func (a *App) search(ctx context.Context) error {
	if a.services.SyncService == nil {
		return ErrStoreUnavailable
	}

	term, err := a.operand("search term")
	if err != nil {
		return err
	}

	apps, err := a.services.SyncService.Search(ctx, term, 0)
	if err != nil {
		return err
	}
	return a.printer.SearchResults(term, apps)
}

// watch keeps the local index in sync until ctx is cancelled.
func (a *App) watch(ctx context.Context) error {
	if a.services.SyncService == nil || a.services.SyncJob == nil {
		return ErrStoreUnavailable
	}

	return workers.NewWorkers(
		workers.NewCatalogSyncWorker(a.services.SyncService, a.services.SyncJob, a.workers.SyncInterval, a.logger),
	).Run(ctx)
}

// operand returns the command's argument joined by spaces.
func (a *App) operand(name string) (string, error) {
	operand := strings.TrimSpace(strings.Join(a.args[1:], " "))
	if operand == "" {
		return "", fmt.Errorf("%w: %s requires %s", ErrMissingArgument, a.args[0], name)
	}
	return operand, nil
}
