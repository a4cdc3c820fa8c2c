package app

import (
	"dealership_backend/internal/brand"
	"dealership_backend/internal/lead"
	"dealership_backend/internal/user"
)

// Models lists every persisted model, in migration order. Users are migrated
// through the credential projection so the password_hash column exists.
func Models() []interface{} {
	return []interface{}{
		&user.Credential{},
		&lead.Lead{},
		&brand.Brand{},
	}
}
