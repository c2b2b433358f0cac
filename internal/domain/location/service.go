package location

import "context"

// LocationService defines business logic for location management.
type LocationService interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	Update(ctx context.Context, req UpdateLocationRequest) (LocationResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (LocationResponse, error)
	List(ctx context.Context) ([]LocationResponse, error)
}
