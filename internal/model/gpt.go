package model

import "time"

// CustomGPT is a user-defined assistant configuration.
type CustomGPT struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChatMessage is a single message in a conversation with a custom GPT.
// Role here is the chat role (user/assistant), unrelated to the access Role.
type ChatMessage struct {
	ID        string    `json:"id"`
	GPTID     string    `json:"gpt_id"`
	OwnerID   string    `json:"owner_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
