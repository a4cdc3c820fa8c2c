// File: internal/lead/service.go
package lead

import (
	"context"
	"time"

	"dealership_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines the interface for lead-related business logic.
type Service interface {
	Submit(ctx context.Context, input CreateLeadInput) (*Lead, error)
	List(ctx context.Context, page, pageSize int) ([]Lead, *common.Pagination, error)
	PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new lead service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Named("LeadService"),
		now:    time.Now,
	}
}

// Submit persists an already validated lead.
func (s *service) Submit(ctx context.Context, input CreateLeadInput) (*Lead, error) {
	message := input.Message
	if message != nil && *message == "" {
		message = nil
	}

	lead := &Lead{
		Name:    input.Name,
		Phone:   input.Phone,
		Message: message,
		CarID:   input.CarID,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		s.logger.Error("Failed to store lead", zap.String("carID", input.CarID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Lead received", zap.String("leadID", lead.ID), zap.String("carID", lead.CarID))
	return lead, nil
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]Lead, *common.Pagination, error) {
	leads, total, err := s.repo.List(ctx, common.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, nil, err
	}
	return leads, common.NewPagination(total, page, pageSize), nil
}

// PurgeOlderThan deletes leads whose age exceeds age.
func (s *service) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, s.now().Add(-age))
}
