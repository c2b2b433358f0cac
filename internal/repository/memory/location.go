package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/google/uuid"
)

type LocationRepository struct {
	mu    sync.RWMutex
	byID  map[string]*location.Location
	order []string
}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{byID: make(map[string]*location.Location)}
}

// Create implements location.LocationRepository.
func (r *LocationRepository) Create(_ context.Context, loc location.Location) (location.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Code == loc.Code {
			return location.Location{}, location.ErrLocationCodeExists
		}
	}

	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	now := time.Now()
	loc.CreatedAt = now
	loc.UpdatedAt = now

	stored := loc
	r.byID[loc.ID] = &stored
	r.order = append(r.order, loc.ID)
	return loc, nil
}

// GetByID implements location.LocationRepository.
func (r *LocationRepository) GetByID(_ context.Context, id string) (location.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.byID[id]
	if !ok {
		return location.Location{}, location.ErrLocationNotFound
	}
	return *loc, nil
}

// GetByCode implements location.LocationRepository.
func (r *LocationRepository) GetByCode(_ context.Context, code string) (location.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, loc := range r.byID {
		if loc.Code == code {
			return *loc, nil
		}
	}
	return location.Location{}, location.ErrLocationNotFound
}

// List implements location.LocationRepository.
func (r *LocationRepository) List(_ context.Context) ([]location.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]location.Location, 0, len(r.order))
	for _, id := range r.order {
		if loc, ok := r.byID[id]; ok {
			out = append(out, *loc)
		}
	}
	return out, nil
}

// Update implements location.LocationRepository.
func (r *LocationRepository) Update(_ context.Context, loc location.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[loc.ID]
	if !ok {
		return location.ErrLocationNotFound
	}
	for id, other := range r.byID {
		if id != loc.ID && other.Code == loc.Code {
			return location.ErrLocationCodeExists
		}
	}

	loc.CreatedAt = stored.CreatedAt
	loc.UpdatedAt = time.Now()
	*stored = loc
	return nil
}

// Delete implements location.LocationRepository.
func (r *LocationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return location.ErrLocationNotFound
	}
	delete(r.byID, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
