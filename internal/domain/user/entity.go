package user

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN" // full access, all locations
	RoleUser  Role = "USER" // scoped to a single location
)

// User is an application login. USER-role accounts carry the location they
// are allowed to see; admins have LocationID nil.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	LocationID   *string
	FullName     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user has unrestricted access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
