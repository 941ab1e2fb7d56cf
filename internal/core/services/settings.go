package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL           = "eventor.base_url"
	keyUserAgent         = "eventor.user_agent"
	keyRequestsPerSecond = "eventor.requests_per_second"
	keyTimeoutSeconds    = "eventor.timeout_seconds"
	keyCataloguePath     = "catalogue.path"
	keyVerify            = "pull.verify"
	keyYear              = "pull.year"
	keyOrganisations     = "pull.organisations"
)

// SettingsService resolves pull settings from configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// A nil configStore yields the defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the pull settings, applying defaults for unset keys.
func (s *SettingsService) Get() (*domain.PullSettings, error) {
	settings := domain.DefaultPullSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	if v := s.configStore.GetString(keyBaseURL); v != "" {
		if _, err := url.ParseRequestURI(v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, keyBaseURL, err)
		}
		settings.BaseURL = v
	}
	settings.UserAgent = s.configStore.GetString(keyUserAgent)
	settings.CataloguePath = s.configStore.GetString(keyCataloguePath)
	settings.Verify = s.configStore.GetBool(keyVerify)

	rps := s.configStore.GetFloat(keyRequestsPerSecond)
	if rps < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyRequestsPerSecond)
	}
	settings.RequestsPerSecond = rps

	timeout := s.configStore.GetInt(keyTimeoutSeconds)
	if timeout < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyTimeoutSeconds)
	}
	settings.Timeout = time.Duration(timeout) * time.Second

	year := s.configStore.GetInt(keyYear)
	if year < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyYear)
	}
	settings.Year = year

	for _, name := range s.configStore.GetStringSlice(keyOrganisations) {
		org, err := domain.ParseOrganisation(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyOrganisations, err)
		}
		settings.Organisations = append(settings.Organisations, org)
	}

	return &settings, nil
}
