package model

import "time"

// Role is the access tier stored on a profile. It gates which area of the
// app a signed-in user is redirected to.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity represents the externally authenticated subject of a request.
// It contains facts returned by the auth backend only; it is resolved per
// request and never persisted by this service.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Profile is the locally persisted metadata associated one-to-one with an
// Identity. It is created lazily on the first successful session resolution.
type Profile struct {
	ID         string    `json:"id"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
