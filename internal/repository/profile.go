package repository

import (
	"context"

	"mygpt/internal/model"
)

// ProfileRepository defines persistence for profiles. Strictly data access,
// no business logic.
type ProfileRepository interface {
	// FindByIdentity returns the profile bound to an identity id.
	FindByIdentity(ctx context.Context, identityID string) (*model.Profile, error)

	// Create inserts a profile. Inserts are conflict-tolerant on
	// identity_id: when a concurrent first login already created the row,
	// the existing row is returned and no error is raised.
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)
}
