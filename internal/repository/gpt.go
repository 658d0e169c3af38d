package repository

import (
	"context"

	"mygpt/internal/model"
)

// GPTRepository defines persistence for custom GPT configurations.
// Every read and delete is scoped to the owning identity.
type GPTRepository interface {
	Create(ctx context.Context, g *model.CustomGPT) (*model.CustomGPT, error)

	FindByID(ctx context.Context, id, ownerID string) (*model.CustomGPT, error)

	ListByOwner(ctx context.Context, ownerID string) ([]model.CustomGPT, error)

	// Delete removes a GPT owned by ownerID. Returns sql.ErrNoRows when no
	// matching row exists, so handlers can answer 404.
	Delete(ctx context.Context, id, ownerID string) error
}

// MessageRepository defines persistence for chat messages, scoped to a GPT
// and its owner.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error)

	ListByGPT(ctx context.Context, gptID, ownerID string) ([]model.ChatMessage, error)

	// DeleteByGPT clears a conversation. Deleting zero rows is not an error.
	DeleteByGPT(ctx context.Context, gptID, ownerID string) error
}
