// File: internal/user/model.go
package user

import (
	"time"

	"dealership_backend/internal/common" // For BaseModel
	"dealership_backend/internal/platform/crypto"
)

// User is the public projection of a users row. It has no password field,
// so nothing read through it can leak the hash.
type User struct {
	common.BaseModel
	Name  string `gorm:"type:varchar(100);not null"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role  string `gorm:"type:varchar(50);not null;default:'admin'"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Credential is the credential-check projection of the same row.
// Only FindCredentialByEmail produces one.
type Credential struct {
	User
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
}

// TableName specifies the table name for the Credential model.
func (Credential) TableName() string {
	return "users"
}

// ComparePassword checks plain against the stored bcrypt hash.
func (c *Credential) ComparePassword(plain string) (bool, error) {
	return crypto.ComparePassword(c.PasswordHash, plain)
}

// publicColumns is the explicit column list for the public projection.
var publicColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
