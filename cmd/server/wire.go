// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"dealership_backend/internal/app"
	"dealership_backend/internal/auth"
	"dealership_backend/internal/brand"
	"dealership_backend/internal/config"
	"dealership_backend/internal/jobs"
	"dealership_backend/internal/lead"
	"dealership_backend/internal/platform/database"
	"dealership_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		provideLogger,
		database.NewConnector,
		provideDB,

		// Accounts and sessions
		user.NewProvider,
		wire.Bind(new(auth.CredentialSource), new(*user.Provider)),
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(auth.UserLookup), new(*user.Service)),
		auth.NewVerifier,
		wire.Bind(new(auth.CredentialVerifier), new(*auth.Verifier)),
		auth.NewSessionService,
		provideBlocklist,
		wire.Bind(new(auth.TokenBlocklist), new(*auth.InMemoryBlocklist)),
		auth.NewLoginThrottleFromConfig,
		auth.NewHandler,

		// Other Modules
		lead.NewGORMRepository,
		lead.NewService,
		lead.NewHandler,
		wire.Bind(new(jobs.LeadPurger), new(lead.Service)),
		brand.NewGORMRepository,
		brand.NewService,
		brand.NewHandler,
		jobs.NewLeadRetentionJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
