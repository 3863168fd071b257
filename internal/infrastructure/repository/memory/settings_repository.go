package memory

import (
	"context"
	"sync"

	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
)

// SettingsRepository holds the auction settings singleton. Get materializes
// the record with defaults on first use.
type SettingsRepository struct {
	mu       sync.RWMutex
	defaults auction.Settings
	settings *auction.Settings
}

func NewSettingsRepository(defaults auction.Settings) *SettingsRepository {
	return &SettingsRepository{defaults: defaults}
}

func (r *SettingsRepository) Get(_ context.Context) (auction.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current(), nil
}

func (r *SettingsRepository) Update(_ context.Context, update auction.Update) (auction.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := r.current()
	settings.Apply(update)
	r.settings = &settings

	return settings, nil
}

func (r *SettingsRepository) Reset(_ context.Context) (auction.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := r.defaults
	r.settings = &settings

	return settings, nil
}

func (r *SettingsRepository) current() auction.Settings {
	if r.settings == nil {
		settings := r.defaults
		r.settings = &settings
	}

	return *r.settings
}
