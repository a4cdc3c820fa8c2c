// File: internal/auth/model.go
package auth

import (
	"strings"

	"dealership_backend/internal/validation"
)

// LoginInput is the credential pair submitted to the login form.
type LoginInput struct {
	Email    string `json:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" label:"Password" validate:"required,min=8"`
}

// Normalize folds the email. The password is compared byte for byte and left alone.
func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// ValidateLogin checks and normalizes a login submission.
func ValidateLogin(input any) (LoginInput, error) {
	var out LoginInput
	if err := validation.Decode(input, &out); err != nil {
		return LoginInput{}, err
	}
	return out, nil
}

// Identity is what a successful verification yields. It carries no secret material.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned in the body of a successful login.
type LoginResponse struct {
	User      Identity `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
}
