package album

import "context"

// Repository describes album persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Album, error)
	GetByID(ctx context.Context, id string) (Album, bool, error)
	Create(ctx context.Context, a Album) error
	Update(ctx context.Context, id string, update Update) (Album, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}
