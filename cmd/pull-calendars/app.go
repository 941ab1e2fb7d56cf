package main

import (
	"fmt"
	"io"

	"github.com/custodia-labs/eventor-calendars/internal/adapters/driven/config/file"
	"github.com/custodia-labs/eventor-calendars/internal/adapters/driven/eventor"
	"github.com/custodia-labs/eventor-calendars/internal/adapters/driven/ical"
	"github.com/custodia-labs/eventor-calendars/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/eventor-calendars/internal/adapters/driving/cli"
	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driving"
	"github.com/custodia-labs/eventor-calendars/internal/core/services"
	"github.com/custodia-labs/eventor-calendars/internal/logger"
)

// newPuller wires the pull service from configuration and flag overrides.
func newPuller(opts cli.PullOptions, progress io.Writer) (driving.Puller, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	settings, err := services.NewSettingsService(configStore).Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	applyOverrides(settings, opts)
	logger.Debug("settings: base=%s year=%d verify=%t catalogue=%q",
		settings.BaseURL, settings.Year, settings.Verify, settings.CataloguePath)

	userAgent := settings.UserAgent
	if userAgent == "" {
		userAgent = "eventor-calendars/" + cli.Version()
	}
	source, err := eventor.NewClient(eventor.Config{
		BaseURL:           settings.BaseURL,
		UserAgent:         userAgent,
		RequestsPerSecond: settings.RequestsPerSecond,
		Timeout:           settings.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	var inspector driven.CalendarInspector
	if settings.Verify {
		inspector = ical.NewInspector()
	}

	var catalogue driven.CatalogueStore
	closeFn := func() error { return nil }
	if settings.CataloguePath != "" {
		store, err := sqlite.NewStore(settings.CataloguePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening catalogue: %w", err)
		}
		catalogue = store.CatalogueStore()
		closeFn = store.Close
	}

	puller := services.NewPullService(
		services.NewIndexBuilder(settings.Organisations),
		source,
		inspector,
		catalogue,
		progress,
		settings.Year,
	)
	return puller, closeFn, nil
}

// applyOverrides lets command-line flags win over the config file.
func applyOverrides(settings *domain.PullSettings, opts cli.PullOptions) {
	if opts.CataloguePath != "" {
		settings.CataloguePath = opts.CataloguePath
	}
	if opts.Verify {
		settings.Verify = true
	}
	if opts.Year > 0 {
		settings.Year = opts.Year
	}
}
