// File: internal/brand/repository.go
package brand

import (
	"context"
	"errors"
	"strings"

	"dealership_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for brand data operations.
type Repository interface {
	Create(ctx context.Context, brand *Brand) error
	FindByID(ctx context.Context, id string) (*Brand, error)
	FindBySlug(ctx context.Context, slug string) (*Brand, error)
	FindAll(ctx context.Context) ([]Brand, error)
	Update(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM brand repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *gormRepository) Create(ctx context.Context, brand *Brand) error {
	err := r.db.WithContext(ctx).Create(brand).Error
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("Brand with this name or slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Brand, error) {
	var brand Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", strings.ToLower(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Brand not found.")
		}
		return nil, err
	}
	return &brand, nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Brand, error) {
	var brand Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", strings.TrimSpace(slug)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Brand not found.")
		}
		return nil, err
	}
	return &brand, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *gormRepository) Update(ctx context.Context, brand *Brand) error {
	err := r.db.WithContext(ctx).Save(brand).Error
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("Brand with this name or slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Brand{BaseModel: common.BaseModel{ID: strings.ToLower(id)}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Brand not found or already deleted.")
	}
	return nil
}
