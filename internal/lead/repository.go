// File: internal/lead/repository.go
package lead

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository defines the interface for lead data operations.
type Repository interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context, offset, limit int) ([]Lead, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM lead repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, lead *Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// List returns one page of leads, newest first, and the total count.
func (r *gormRepository) List(ctx context.Context, offset, limit int) ([]Lead, int64, error) {
	var (
		leads []Lead
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// DeleteOlderThan removes leads created before cutoff and reports how many went.
func (r *gormRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&Lead{})
	return result.RowsAffected, result.Error
}
