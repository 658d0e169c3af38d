package postgres

import (
	"context"
	"database/sql"

	"mygpt/internal/model"
	"mygpt/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
type MessagePostgres struct {
	db *sql.DB
}

// NewMessagePostgres creates a new MessagePostgres repository.
func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

const messageColumns = `id, gpt_id, owner_id, role, content, created_at`

// Create inserts a chat message and returns the stored record.
func (r *MessagePostgres) Create(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error) {
	const q = `
		INSERT INTO chat_messages (id, gpt_id, owner_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + messageColumns + `
	`
	row := r.db.QueryRowContext(ctx, q,
		msg.ID,
		msg.GPTID,
		msg.OwnerID,
		msg.Role,
		msg.Content,
		msg.CreatedAt,
	)
	var out model.ChatMessage
	if err := row.Scan(
		&out.ID,
		&out.GPTID,
		&out.OwnerID,
		&out.Role,
		&out.Content,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByGPT returns a conversation in chronological order, scoped to the owner.
func (r *MessagePostgres) ListByGPT(ctx context.Context, gptID, ownerID string) ([]model.ChatMessage, error) {
	const q = `
		SELECT ` + messageColumns + `
		FROM chat_messages
		WHERE gpt_id = $1 AND owner_id = $2
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, gptID, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.GPTID,
			&m.OwnerID,
			&m.Role,
			&m.Content,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByGPT clears an owner's conversation. Deleting zero rows is fine.
func (r *MessagePostgres) DeleteByGPT(ctx context.Context, gptID, ownerID string) error {
	const q = `DELETE FROM chat_messages WHERE gpt_id = $1 AND owner_id = $2`
	_, err := r.db.ExecContext(ctx, q, gptID, ownerID)
	return err
}
