// File: internal/auth/session.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"dealership_backend/internal/config"
	"dealership_backend/internal/platform/crypto"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sessionIssuer = "dealership_backend"

// Claims is the payload of an admin session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(cfg *config.Config, logger *zap.Logger) *SessionService {
	return &SessionService{
		secret: []byte(cfg.JWTSecretKey),
		ttl:    cfg.SessionTTL,
		logger: logger.Named("SessionService"),
		now:    time.Now,
	}
}

// Issue signs a session token for id.
func (s *SessionService) Issue(id Identity, role string) (string, *Claims, error) {
	jti, err := crypto.GenerateSecureRandomString(16)
	if err != nil {
		return "", nil, fmt.Errorf("could not generate session id: %w", err)
	}

	now := s.now()
	claims := &Claims{
		UserID: id.ID,
		Email:  id.Email,
		Name:   id.Name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   id.ID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return "", nil, fmt.Errorf("could not sign session token: %w", err)
	}
	return signed, claims, nil
}

// Validate parses tokenString and returns its claims.
func (s *SessionService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if claims.ID == "" || claims.UserID == "" {
		return nil, errors.New("session token is missing required claims")
	}
	return claims, nil
}
