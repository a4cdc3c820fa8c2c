// File: internal/user/service.go
package user

import (
	"context"
	"fmt"
	"strings"

	"dealership_backend/internal/common"
	"dealership_backend/internal/platform/crypto"

	"go.uber.org/zap"
)

// Service handles user business logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger.Named("UserService")}
}

// CreateAdmin stores a new admin account. Email and password are expected to have
// passed the login schema already.
func (s *Service) CreateAdmin(ctx context.Context, name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrBadRequest.WithDetails("Name is required.")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, common.ErrBadRequest.WithDetails(err.Error())
	}

	credential := &Credential{
		User: User{
			Name:  name,
			Email: email,
			Role:  common.RoleAdmin,
		},
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, credential); err != nil {
		if _, ok := common.IsAPIError(err); ok {
			return nil, err
		}
		s.logger.Error("Failed to create admin user", zap.String("email", credential.Email), zap.Error(err))
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("Admin user created", zap.String("userID", credential.ID), zap.String("email", credential.Email))
	return &credential.User, nil
}

// GetUserByID returns the public projection of a user.
func (s *Service) GetUserByID(ctx context.Context, id string) (*User, error) {
	if !common.IsValidID(id) {
		return nil, common.ErrNotFound.WithDetails("User not found.")
	}
	return s.repo.FindByID(ctx, id)
}
