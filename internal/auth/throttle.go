package auth

import (
	"time"

	"dealership_backend/internal/config"

	"github.com/patrickmn/go-cache"
)

// LoginThrottle counts failed logins per normalized email. Once maxAttempts
// failures land inside one window, Allow reports false until the window lapses.
// The window starts at the first failure.
type LoginThrottle struct {
	maxAttempts int
	window      time.Duration
	failures    *cache.Cache
}

// NewLoginThrottle creates a throttle. maxAttempts <= 0 disables it.
func NewLoginThrottle(maxAttempts int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		maxAttempts: maxAttempts,
		window:      window,
		failures:    cache.New(window, 2*window),
	}
}

// NewLoginThrottleFromConfig builds the throttle from LOGIN_* settings.
func NewLoginThrottleFromConfig(cfg *config.Config) *LoginThrottle {
	return NewLoginThrottle(cfg.LoginMaxAttempts, cfg.LoginLockoutWindow)
}

// Allow reports whether another attempt for key may proceed.
func (t *LoginThrottle) Allow(key string) bool {
	if t.maxAttempts <= 0 {
		return true
	}
	v, found := t.failures.Get(key)
	if !found {
		return true
	}
	return v.(int) < t.maxAttempts
}

// RecordFailure counts one failed attempt for key.
func (t *LoginThrottle) RecordFailure(key string) {
	if t.maxAttempts <= 0 {
		return
	}
	if err := t.failures.Add(key, 1, t.window); err == nil {
		return
	}
	if _, err := t.failures.IncrementInt(key, 1); err != nil {
		// Expired between Add and IncrementInt.
		t.failures.Set(key, 1, t.window)
	}
}

// Reset forgets the failures recorded for key.
func (t *LoginThrottle) Reset(key string) {
	t.failures.Delete(key)
}
