package driving

import "github.com/custodia-labs/eventor-calendars/internal/core/domain"

// SettingsService provides the settings a pull runs with.
type SettingsService interface {
	// Get returns the configured pull settings with defaults applied.
	Get() (*domain.PullSettings, error)
}
