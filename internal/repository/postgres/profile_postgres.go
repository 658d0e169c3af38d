package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mygpt/internal/model"
	"mygpt/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileColumns = `id, identity_id, email, full_name, role, created_at, updated_at`

func scanProfile(row *sql.Row) (*model.Profile, error) {
	var p model.Profile
	if err := row.Scan(
		&p.ID,
		&p.IdentityID,
		&p.Email,
		&p.FullName,
		&p.Role,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIdentity fetches the profile bound to an identity id.
func (r *ProfilePostgres) FindByIdentity(ctx context.Context, identityID string) (*model.Profile, error) {
	const q = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE identity_id = $1
	`
	return scanProfile(r.db.QueryRowContext(ctx, q, identityID))
}

// Create inserts a profile row. The insert is conflict-tolerant on
// identity_id: when a concurrent first login wins the race, the winner's
// row is fetched and returned instead of surfacing the conflict.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	const q = `
		INSERT INTO profiles (id, identity_id, email, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (identity_id) DO NOTHING
		RETURNING ` + profileColumns + `
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.IdentityID,
		p.Email,
		p.FullName,
		p.Role,
		p.CreatedAt,
		p.UpdatedAt,
	)
	out, err := scanProfile(row)
	if err == nil {
		return out, nil
	}
	// DO NOTHING returns no row when the profile already exists; the
	// existing row is the correct answer in that case.
	if errors.Is(err, sql.ErrNoRows) {
		return r.FindByIdentity(ctx, p.IdentityID)
	}
	return nil, err
}
