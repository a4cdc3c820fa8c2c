// File: internal/brand/model.go
package brand

import (
	"strings"
	"time"

	"dealership_backend/internal/common"
	"dealership_backend/internal/validation"
)

// Brand represents the brand model in the database.
type Brand struct {
	common.BaseModel
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_brands_name"`
	Slug        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_brands_slug"`
	Logo        *string `gorm:"type:varchar(500)"`
	Description *string `gorm:"type:text"`
	MetaTitle   *string `gorm:"column:meta_title;type:varchar(60)"`
	MetaDesc    *string `gorm:"column:meta_desc;type:varchar(160)"`
}

// TableName specifies the table name for the Brand model.
func (Brand) TableName() string {
	return "brands"
}

// --- Input contracts ---

// CreateBrandInput is the admin form for a new brand.
type CreateBrandInput struct {
	Name        string  `json:"name" label:"Name" validate:"required,min=2,max=100"`
	Slug        *string `json:"slug,omitempty" label:"Slug" validate:"omitempty,min=2,max=100,slug"`
	Logo        *string `json:"logo,omitempty" label:"Logo" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" label:"Description" validate:"omitempty,max=1000"`
	MetaTitle   *string `json:"metaTitle,omitempty" label:"Meta title" validate:"omitempty,max=60"`
	MetaDesc    *string `json:"metaDesc,omitempty" label:"Meta description" validate:"omitempty,max=160"`
}

func (in *CreateBrandInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	trimAll(in.Slug, in.Logo, in.Description, in.MetaTitle, in.MetaDesc)
}

// UpdateBrandInput is a partial patch. Absent (or null) fields are left unchanged;
// present fields obey the same rules as on create.
type UpdateBrandInput struct {
	Name        *string `json:"name,omitempty" label:"Name" validate:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug,omitempty" label:"Slug" validate:"omitempty,min=2,max=100,slug"`
	Logo        *string `json:"logo,omitempty" label:"Logo" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" label:"Description" validate:"omitempty,max=1000"`
	MetaTitle   *string `json:"metaTitle,omitempty" label:"Meta title" validate:"omitempty,max=60"`
	MetaDesc    *string `json:"metaDesc,omitempty" label:"Meta description" validate:"omitempty,max=160"`
}

func (in *UpdateBrandInput) Normalize() {
	trimAll(in.Name, in.Slug, in.Logo, in.Description, in.MetaTitle, in.MetaDesc)
}

// IsEmpty reports whether the patch changes nothing.
func (in UpdateBrandInput) IsEmpty() bool {
	return in.Name == nil && in.Slug == nil && in.Logo == nil &&
		in.Description == nil && in.MetaTitle == nil && in.MetaDesc == nil
}

// ValidateCreate checks and normalizes a new brand.
func ValidateCreate(input any) (CreateBrandInput, error) {
	var out CreateBrandInput
	if err := validation.Decode(input, &out); err != nil {
		return CreateBrandInput{}, err
	}
	return out, nil
}

// ValidateUpdate checks and normalizes a brand patch. An empty object is valid.
func ValidateUpdate(input any) (UpdateBrandInput, error) {
	var out UpdateBrandInput
	if err := validation.Decode(input, &out); err != nil {
		return UpdateBrandInput{}, err
	}
	return out, nil
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		validation.TrimPtr(f)
	}
}

// --- DTOs ---

// BrandResponse defines the structure for brand data sent in API responses.
type BrandResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Logo        *string   `json:"logo,omitempty"`
	Description *string   `json:"description,omitempty"`
	MetaTitle   *string   `json:"metaTitle,omitempty"`
	MetaDesc    *string   `json:"metaDesc,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToBrandResponse converts a Brand model to a BrandResponse DTO.
func ToBrandResponse(b *Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Logo:        b.Logo,
		Description: b.Description,
		MetaTitle:   b.MetaTitle,
		MetaDesc:    b.MetaDesc,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
