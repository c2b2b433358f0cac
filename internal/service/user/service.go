package user

import (
	"context"
	"fmt"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	location.LocationRepository
	auditService audit.AuditService
}

func NewUserService(
	userRepo user.UserRepository,
	locationRepo location.LocationRepository,
	auditService audit.AuditService,
) user.UserService {
	return &UserServiceImpl{
		UserRepository:     userRepo,
		LocationRepository: locationRepo,
		auditService:       auditService,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	if req.LocationID != nil {
		if _, err := s.LocationRepository.GetByID(ctx, *req.LocationID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		LocationID:   req.LocationID,
		FullName:     req.FullName,
		Active:       true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionKullanici, fmt.Sprintf("%s kullanıcısı oluşturuldu.", u.FullName))
	return user.ToResponse(u), nil
}

// Update implements user.UserService. An empty password keeps the current
// hash.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	current, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if req.LocationID != nil {
		if _, err := s.LocationRepository.GetByID(ctx, *req.LocationID); err != nil {
			return user.UserResponse{}, err
		}
	}

	current.Username = req.Username
	current.Role = req.Role
	current.LocationID = req.LocationID
	current.FullName = req.FullName
	if req.Active != nil {
		current.Active = *req.Active
	}
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return user.UserResponse{}, err
		}
		current.PasswordHash = hash
	}

	if err := s.UserRepository.Update(ctx, current); err != nil {
		return user.UserResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionKullanici, fmt.Sprintf("%s kullanıcısı güncellendi.", current.FullName))
	return user.ToResponse(current), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, audit.ActionKullanici, fmt.Sprintf("%s kullanıcısı silindi.", u.FullName))
	return nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToResponse(u))
	}
	return out, nil
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
