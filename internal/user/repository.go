// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"

	"dealership_backend/internal/common"

	"gorm.io/gorm"
)

// CredentialReader is the credential-check read capability. It is the only way to
// obtain a password hash from the store.
type CredentialReader interface {
	FindCredentialByEmail(ctx context.Context, email string) (*Credential, error)
}

// Repository defines the interface for user data operations.
type Repository interface {
	CredentialReader
	Create(ctx context.Context, credential *Credential) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM user repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts a new user with its password hash.
func (r *gormRepository) Create(ctx context.Context, credential *Credential) error {
	credential.Email = NormalizeEmail(credential.Email)
	if credential.Role == "" {
		credential.Role = common.RoleAdmin
	}
	err := r.db.WithContext(ctx).Create(credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrConflict.WithDetails("User with this email already exists.")
		}
		return err
	}
	return nil
}

// FindByEmail retrieves the public projection of a user by email.
func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).
		Select(publicColumns).
		Where("email = ?", NormalizeEmail(email)).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindByID retrieves the public projection of a user by ID.
func (r *gormRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).
		Select(publicColumns).
		Where("id = ?", id).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindCredentialByEmail loads the row including password_hash, which is
// requested explicitly rather than relying on SELECT *.
func (r *gormRepository) FindCredentialByEmail(ctx context.Context, email string) (*Credential, error) {
	var credential Credential
	columns := append(append([]string{}, publicColumns...), "password_hash")
	err := r.db.WithContext(ctx).
		Select(columns).
		Where("email = ?", NormalizeEmail(email)).
		First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		return nil, err
	}
	return &credential, nil
}
