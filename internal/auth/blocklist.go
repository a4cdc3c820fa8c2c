// File: internal/auth/blocklist.go
package auth

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// TokenBlocklist records session IDs (jti) that were logged out before they expired.
type TokenBlocklist interface {
	Add(ctx context.Context, jti string, expiresAt time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
}

// InMemoryBlocklist is a TokenBlocklist backed by go-cache. Entries expire
// together with the token they block.
type InMemoryBlocklist struct {
	cache *cache.Cache
}

// NewInMemoryBlocklist creates an empty blocklist that sweeps expired entries every cleanupInterval.
func NewInMemoryBlocklist(cleanupInterval time.Duration) *InMemoryBlocklist {
	return &InMemoryBlocklist{cache: cache.New(cache.NoExpiration, cleanupInterval)}
}

// Add blocks jti until expiresAt. Tokens that have already expired are ignored.
func (b *InMemoryBlocklist) Add(_ context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	b.cache.Set(jti, struct{}{}, ttl)
	return nil
}

// Contains reports whether jti has been blocked.
func (b *InMemoryBlocklist) Contains(_ context.Context, jti string) (bool, error) {
	_, found := b.cache.Get(jti)
	return found, nil
}
