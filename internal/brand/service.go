// File: internal/brand/service.go
package brand

import (
	"context"

	"dealership_backend/internal/common"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Service defines the interface for brand-related business logic.
type Service interface {
	// Admin methods
	AdminCreateBrand(ctx context.Context, input CreateBrandInput) (*Brand, error)
	AdminUpdateBrand(ctx context.Context, id string, input UpdateBrandInput) (*Brand, error)
	AdminDeleteBrand(ctx context.Context, id string) error

	// Public methods
	GetBrandByID(ctx context.Context, id string) (*Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*Brand, error)
	GetAllBrands(ctx context.Context) ([]Brand, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new brand service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Named("BrandService"),
	}
}

// --- Admin Methods ---

func (s *service) AdminCreateBrand(ctx context.Context, input CreateBrandInput) (*Brand, error) {
	var finalSlug string
	if input.Slug != nil {
		finalSlug = *input.Slug
	} else {
		finalSlug = slug.Make(input.Name)
	}
	if finalSlug == "" {
		return nil, common.ErrBadRequest.WithDetails("A slug could not be derived from the name; please provide one.")
	}

	brand := &Brand{
		Name:        input.Name,
		Slug:        finalSlug,
		Logo:        input.Logo,
		Description: input.Description,
		MetaTitle:   input.MetaTitle,
		MetaDesc:    input.MetaDesc,
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		s.logger.Error("Failed to create brand", zap.Error(err), zap.String("name", input.Name))
		return nil, err
	}
	s.logger.Info("Brand created successfully", zap.String("id", brand.ID), zap.String("slug", brand.Slug))
	return brand, nil
}

func (s *service) AdminUpdateBrand(ctx context.Context, id string, input UpdateBrandInput) (*Brand, error) {
	brand, err := s.GetBrandByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.IsEmpty() {
		return brand, nil
	}

	if input.Name != nil {
		brand.Name = *input.Name
	}
	if input.Slug != nil {
		brand.Slug = *input.Slug
	}
	if input.Logo != nil {
		brand.Logo = input.Logo
	}
	if input.Description != nil {
		brand.Description = input.Description
	}
	if input.MetaTitle != nil {
		brand.MetaTitle = input.MetaTitle
	}
	if input.MetaDesc != nil {
		brand.MetaDesc = input.MetaDesc
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		s.logger.Error("Failed to update brand", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	s.logger.Info("Brand updated successfully", zap.String("id", brand.ID))
	return brand, nil
}

func (s *service) AdminDeleteBrand(ctx context.Context, id string) error {
	if !common.IsValidID(id) {
		return common.ErrNotFound.WithDetails("Brand not found.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete brand", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Brand deleted successfully", zap.String("id", id))
	return nil
}

// --- Public Methods ---

func (s *service) GetBrandByID(ctx context.Context, id string) (*Brand, error) {
	if !common.IsValidID(id) {
		return nil, common.ErrNotFound.WithDetails("Brand not found.")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetBrandBySlug(ctx context.Context, slugToFind string) (*Brand, error) {
	return s.repo.FindBySlug(ctx, slugToFind)
}

func (s *service) GetAllBrands(ctx context.Context) ([]Brand, error) {
	brands, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all brands", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve brands.")
	}
	return brands, nil
}
