package user

import (
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       Role    `json:"role"`
	LocationID *string `json:"location_id,omitempty"`
	FullName   string  `json:"full_name"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 characters (letters, digits, . _ -)"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	switch r.Role {
	case RoleAdmin:
	case RoleUser:
		if r.LocationID == nil || validator.IsEmpty(*r.LocationID) {
			errs = append(errs, validator.ValidationError{Field: "location_id", Message: "location_id is required for USER role"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be ADMIN or USER"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID string `json:"-"`
	// Password is optional on update; empty keeps the current hash.
	Username   string  `json:"username"`
	Password   string  `json:"password,omitempty"`
	Role       Role    `json:"role"`
	LocationID *string `json:"location_id,omitempty"`
	FullName   string  `json:"full_name"`
	Active     *bool   `json:"active,omitempty"`
}

type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       Role    `json:"role"`
	LocationID *string `json:"location_id,omitempty"`
	FullName   string  `json:"full_name"`
	Active     bool    `json:"active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		LocationID: u.LocationID,
		FullName:   u.FullName,
		Active:     u.Active,
	}
}
