package user

import "context"

// UserService defines business logic for managing application logins
// (admin only). Passwords are stored bcrypt-hashed; responses never carry
// them. Mutations emit KULLANICI audit entries.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
}
