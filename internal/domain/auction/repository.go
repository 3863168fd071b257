package auction

import "context"

// Repository persists the singleton auction settings. Get creates the record
// with defaults when it does not exist yet.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, update Update) (Settings, error)
	Reset(ctx context.Context) (Settings, error)
}
