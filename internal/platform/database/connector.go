package database

import (
	"context"
	"fmt"
	"sync"

	"dealership_backend/internal/config"

	"gorm.io/gorm"
)

// Opener establishes a brand new database handle.
type Opener func() (*gorm.DB, error)

// Connector hands out a single shared *gorm.DB, opening it on first use.
// A failed open is not cached: the next Connect call tries again.
type Connector struct {
	open Opener

	mu sync.Mutex
	db *gorm.DB
}

// NewConnector creates a Connector that opens postgres with NewGORM.
func NewConnector(cfg *config.Config) *Connector {
	return NewConnectorWithOpener(func() (*gorm.DB, error) {
		return NewGORM(cfg)
	})
}

// NewConnectorWithOpener creates a Connector around an arbitrary opener (tests use sqlite).
func NewConnectorWithOpener(open Opener) *Connector {
	return &Connector{open: open}
}

// Connect returns the shared handle, opening it if needed.
func (c *Connector) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db.WithContext(ctx), nil
	}
	db, err := c.open()
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}
	c.db = db
	return db.WithContext(ctx), nil
}

// Close releases the shared handle if one was opened.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	CloseGORMDB(c.db)
	c.db = nil
}
