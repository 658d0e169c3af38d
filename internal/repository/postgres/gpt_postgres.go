package postgres

import (
	"context"
	"database/sql"

	"mygpt/internal/model"
	"mygpt/internal/repository"
)

// GPTPostgres is a PostgreSQL implementation of repository.GPTRepository.
type GPTPostgres struct {
	db *sql.DB
}

// NewGPTPostgres creates a new GPTPostgres repository.
func NewGPTPostgres(db *sql.DB) *GPTPostgres {
	return &GPTPostgres{db: db}
}

var _ repository.GPTRepository = (*GPTPostgres)(nil)

const gptColumns = `id, owner_id, name, description, instructions, created_at`

// Create inserts a new custom GPT row and returns the stored record.
func (r *GPTPostgres) Create(ctx context.Context, g *model.CustomGPT) (*model.CustomGPT, error) {
	const q = `
		INSERT INTO custom_gpts (id, owner_id, name, description, instructions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + gptColumns + `
	`
	row := r.db.QueryRowContext(ctx, q,
		g.ID,
		g.OwnerID,
		g.Name,
		g.Description,
		g.Instructions,
		g.CreatedAt,
	)
	var out model.CustomGPT
	if err := row.Scan(
		&out.ID,
		&out.OwnerID,
		&out.Name,
		&out.Description,
		&out.Instructions,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a GPT by id, scoped to its owner.
func (r *GPTPostgres) FindByID(ctx context.Context, id, ownerID string) (*model.CustomGPT, error) {
	const q = `
		SELECT ` + gptColumns + `
		FROM custom_gpts
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRowContext(ctx, q, id, ownerID)
	var g model.CustomGPT
	if err := row.Scan(
		&g.ID,
		&g.OwnerID,
		&g.Name,
		&g.Description,
		&g.Instructions,
		&g.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// ListByOwner returns all GPTs belonging to an owner, newest first.
func (r *GPTPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.CustomGPT, error) {
	const q = `
		SELECT ` + gptColumns + `
		FROM custom_gpts
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CustomGPT, 0)
	for rows.Next() {
		var g model.CustomGPT
		if err := rows.Scan(
			&g.ID,
			&g.OwnerID,
			&g.Name,
			&g.Description,
			&g.Instructions,
			&g.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an owner's GPT. Zero rows affected means the GPT does not
// exist (or belongs to someone else) and is reported as sql.ErrNoRows.
func (r *GPTPostgres) Delete(ctx context.Context, id, ownerID string) error {
	const q = `DELETE FROM custom_gpts WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
