// File: internal/auth/verifier.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"dealership_backend/internal/common"
	"dealership_backend/internal/platform/crypto"

	"go.uber.org/zap"
)

// Result is the outcome of a credential check: either Authenticated with an
// Identity, or Unauthenticated. The cause of a failure is not part of it.
type Result struct {
	identity      Identity
	authenticated bool
}

// Authenticated builds the success variant.
func Authenticated(id Identity) Result {
	return Result{identity: id, authenticated: true}
}

// Unauthenticated builds the failure variant.
func Unauthenticated() Result {
	return Result{}
}

// Identity returns the verified identity and true, or a zero Identity and false.
func (r Result) Identity() (Identity, bool) {
	return r.identity, r.authenticated
}

// IsAuthenticated reports whether the check succeeded.
func (r Result) IsAuthenticated() bool {
	return r.authenticated
}

// Verifier authenticates an email/password pair against the stored bcrypt hash.
// Missing account, wrong password and store faults all produce Unauthenticated;
// faults are only visible through the logger.
type Verifier struct {
	source CredentialSource
	logger *zap.Logger

	// compare runs against dummyHash for unknown accounts so they cost the same as a wrong password.
	compare func(hash, password string) (bool, error)
}

// dummyHash is a bcrypt hash at the default cost that no password matches.
var dummyHash = sync.OnceValue(func() string {
	secret, err := crypto.GenerateSecureRandomString(32)
	if err != nil {
		return ""
	}
	hash, err := crypto.HashPassword(secret)
	if err != nil {
		return ""
	}
	return hash
})

// NewVerifier creates a new credential verifier.
func NewVerifier(source CredentialSource, logger *zap.Logger) *Verifier {
	return &Verifier{
		source:  source,
		logger:  logger.Named("CredentialVerifier"),
		compare: crypto.ComparePassword,
	}
}

// Verify runs connect, lookup and compare. It never returns an error and never panics.
func (v *Verifier) Verify(ctx context.Context, email, password string) (result Result) {
	email = strings.ToLower(strings.TrimSpace(email))

	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("Credential verification panicked",
				zap.String("email", email),
				zap.Error(fmt.Errorf("panic: %v", r)),
			)
			result = Unauthenticated()
		}
	}()

	reader, err := v.source.Credentials(ctx)
	if err != nil {
		v.logger.Error("Credential store unavailable", zap.Error(err))
		return Unauthenticated()
	}

	credential, err := reader.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_, _ = v.compare(dummyHash(), password)
			v.logger.Info("Login attempt for unknown account", zap.String("email", email))
			return Unauthenticated()
		}
		v.logger.Error("Credential lookup failed", zap.String("email", email), zap.Error(err))
		return Unauthenticated()
	}
	if credential == nil {
		return Unauthenticated()
	}

	ok, err := credential.ComparePassword(password)
	if err != nil {
		v.logger.Error("Stored password hash is unusable",
			zap.String("userID", credential.ID),
			zap.Error(err),
		)
		return Unauthenticated()
	}
	if !ok {
		v.logger.Info("Login attempt with wrong password", zap.String("userID", credential.ID))
		return Unauthenticated()
	}

	return Authenticated(Identity{
		ID:    credential.ID,
		Name:  credential.Name,
		Email: credential.Email,
	})
}
