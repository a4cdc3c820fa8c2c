// File: internal/auth/interfaces.go
package auth

import (
	"context"

	"dealership_backend/internal/user"
)

// CredentialSource acquires (or reuses) a connection to the user store and returns
// its credential-check capability. user.Provider implements it.
type CredentialSource interface {
	Credentials(ctx context.Context) (user.CredentialReader, error)
}

// CredentialVerifier is the login check used by the handler.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) Result
}

// UserLookup resolves the public projection of the signed-in user.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*user.User, error)
}
