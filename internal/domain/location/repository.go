package location

import "context"

// LocationRepository defines data access for locations.
type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)
	GetByID(ctx context.Context, id string) (Location, error)
	GetByCode(ctx context.Context, code string) (Location, error)
	List(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, loc Location) error
	Delete(ctx context.Context, id string) error
}
