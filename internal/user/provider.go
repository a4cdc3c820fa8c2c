package user

import (
	"context"

	"dealership_backend/internal/platform/database"
)

// Provider connects to the user store on demand and hands out repositories bound
// to the shared connection.
type Provider struct {
	conn *database.Connector
}

// NewProvider creates a Provider over conn.
func NewProvider(conn *database.Connector) *Provider {
	return &Provider{conn: conn}
}

// Credentials acquires (or reuses) the connection and returns the credential reader.
func (p *Provider) Credentials(ctx context.Context) (CredentialReader, error) {
	return p.Repository(ctx)
}

// Repository acquires (or reuses) the connection and returns the full repository.
func (p *Provider) Repository(ctx context.Context) (Repository, error) {
	db, err := p.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return NewGORMRepository(db), nil
}
