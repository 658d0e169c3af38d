package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"mygpt/internal/model"
	"mygpt/internal/repository"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNameRequired    = errors.New("name is required")
	ErrContentRequired = errors.New("content is required")
	ErrNotFound        = errors.New("not found")
)

// GPTInput carries the user-editable fields of a custom GPT.
type GPTInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// GPTService defines the owner-scoped use cases for custom GPTs and their
// conversations.
type GPTService interface {
	CreateGPT(ctx context.Context, ownerID string, in GPTInput) (*model.CustomGPT, error)
	ListGPTs(ctx context.Context, ownerID string) ([]model.CustomGPT, error)
	GetGPT(ctx context.Context, id, ownerID string) (*model.CustomGPT, error)
	DeleteGPT(ctx context.Context, id, ownerID string) error

	AppendMessage(ctx context.Context, gptID, ownerID, role, content string) (*model.ChatMessage, error)
	ListMessages(ctx context.Context, gptID, ownerID string) ([]model.ChatMessage, error)
	ClearMessages(ctx context.Context, gptID, ownerID string) error
}

type gptService struct {
	gpts     repository.GPTRepository
	messages repository.MessageRepository
}

// NewGPTService constructs a new GPTService.
func NewGPTService(gpts repository.GPTRepository, messages repository.MessageRepository) GPTService {
	return &gptService{gpts: gpts, messages: messages}
}

func (s *gptService) CreateGPT(ctx context.Context, ownerID string, in GPTInput) (*model.CustomGPT, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	g := &model.CustomGPT{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         in.Name,
		Description:  in.Description,
		Instructions: in.Instructions,
		CreatedAt:    time.Now().UTC(),
	}
	return s.gpts.Create(ctx, g)
}

func (s *gptService) ListGPTs(ctx context.Context, ownerID string) ([]model.CustomGPT, error) {
	return s.gpts.ListByOwner(ctx, ownerID)
}

func (s *gptService) GetGPT(ctx context.Context, id, ownerID string) (*model.CustomGPT, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	g, err := s.gpts.FindByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *gptService) DeleteGPT(ctx context.Context, id, ownerID string) error {
	if id == "" {
		return ErrIDRequired
	}
	// Clear the conversation first so a GPT row never outlives its messages.
	if err := s.messages.DeleteByGPT(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.gpts.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *gptService) AppendMessage(ctx context.Context, gptID, ownerID, role, content string) (*model.ChatMessage, error) {
	if gptID == "" {
		return nil, ErrIDRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	if role == "" {
		role = "user"
	}

	// The GPT must exist and belong to the caller.
	if _, err := s.GetGPT(ctx, gptID, ownerID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ID:        uuid.New().String(),
		GPTID:     gptID,
		OwnerID:   ownerID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	return s.messages.Create(ctx, msg)
}

func (s *gptService) ListMessages(ctx context.Context, gptID, ownerID string) ([]model.ChatMessage, error) {
	if gptID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.GetGPT(ctx, gptID, ownerID); err != nil {
		return nil, err
	}
	return s.messages.ListByGPT(ctx, gptID, ownerID)
}

func (s *gptService) ClearMessages(ctx context.Context, gptID, ownerID string) error {
	if gptID == "" {
		return ErrIDRequired
	}
	if _, err := s.GetGPT(ctx, gptID, ownerID); err != nil {
		return err
	}
	return s.messages.DeleteByGPT(ctx, gptID, ownerID)
}
