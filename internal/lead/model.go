// File: internal/lead/model.go
package lead

import (
	"strings"
	"time"

	"dealership_backend/internal/common"
	"dealership_backend/internal/validation"
)

// Lead is an enquiry submitted from a vehicle page.
type Lead struct {
	common.BaseModel
	Name    string  `gorm:"type:varchar(100);not null"`
	Phone   string  `gorm:"type:varchar(20);not null"`
	Message *string `gorm:"type:text"`
	CarID   string  `gorm:"column:car_id;type:char(24);not null;index"`
}

// TableName specifies the table name for the Lead model.
func (Lead) TableName() string {
	return "leads"
}

// CreateLeadInput is the public lead form.
type CreateLeadInput struct {
	Name    string  `json:"name" label:"Name" validate:"required,min=1,max=100"`
	Phone   string  `json:"phone" label:"Phone" validate:"required,min=10,max=15,phone"`
	Message *string `json:"message,omitempty" label:"Message" validate:"omitempty,max=500"`
	CarID   string  `json:"carId" label:"Car ID" validate:"required,objectid"`
}

// Normalize trims every field and folds the car identifier to lowercase.
func (in *CreateLeadInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	validation.TrimPtr(in.Message)
	in.CarID = strings.ToLower(strings.TrimSpace(in.CarID))
}

// ValidateCreate checks and normalizes a lead submission.
func ValidateCreate(input any) (CreateLeadInput, error) {
	var out CreateLeadInput
	if err := validation.Decode(input, &out); err != nil {
		return CreateLeadInput{}, err
	}
	return out, nil
}

// LeadResponse defines the structure for lead data sent in API responses.
type LeadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   *string   `json:"message,omitempty"`
	CarID     string    `json:"carId"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLeadResponse converts a Lead model to a LeadResponse DTO.
func ToLeadResponse(l *Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Phone:     l.Phone,
		Message:   l.Message,
		CarID:     l.CarID,
		CreatedAt: l.CreatedAt,
	}
}
