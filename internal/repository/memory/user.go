package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*user.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]*user.User)}
}

// Create implements user.UserRepository.
func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := u
	r.byID[u.ID] = &stored
	r.order = append(r.order, u.ID)
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return *u, nil
}

// GetByUsername implements user.UserRepository.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// List implements user.UserRepository.
func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.order))
	for _, id := range r.order {
		if u, ok := r.byID[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

// Update implements user.UserRepository.
func (r *UserRepository) Update(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	for id, other := range r.byID {
		if id != u.ID && other.Username == u.Username {
			return user.ErrUsernameExists
		}
	}

	u.CreatedAt = stored.CreatedAt
	u.UpdatedAt = time.Now()
	*stored = u
	return nil
}

// Delete implements user.UserRepository.
func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return user.ErrUserNotFound
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
