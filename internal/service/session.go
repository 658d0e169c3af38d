package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mygpt/internal/auth"
	"mygpt/internal/model"
	"mygpt/internal/repository"
)

// Credentials are the raw authentication inputs extracted from a request:
// the session cookie token and/or a one-time exchange code from the OAuth
// callback. Both may be empty.
type Credentials struct {
	Token string
	Code  string
}

// Resolution is the outcome of session resolution. Identity and Profile
// are nil for unauthenticated requests. Session is set only when a code
// was exchanged, so the handler can issue the cookie. Faults collects
// non-fatal failures (failed exchange, failed profile auto-create); the
// caller decides whether to log them. A fault never makes the whole
// resolution fail.
type Resolution struct {
	Identity *model.Identity
	Profile  *model.Profile
	Session  *auth.Session
	Faults   []error
}

// Authenticated reports whether a valid identity was resolved.
func (r *Resolution) Authenticated() bool {
	return r.Identity != nil
}

// SessionService resolves an inbound request's credentials to an identity
// and its profile, creating the profile on first sight.
type SessionService interface {
	Resolve(ctx context.Context, creds Credentials) *Resolution
}

type sessionService struct {
	backend  auth.Client
	profiles repository.ProfileRepository
}

// NewSessionService constructs a new SessionService.
func NewSessionService(backend auth.Client, profiles repository.ProfileRepository) SessionService {
	return &sessionService{backend: backend, profiles: profiles}
}

// Resolve determines the caller's identity and profile. An exchange code
// takes precedence over a cookie token; any external failure downgrades
// the request to unauthenticated (or default-role) instead of erroring.
func (s *sessionService) Resolve(ctx context.Context, creds Credentials) *Resolution {
	res := &Resolution{}

	token := creds.Token
	if creds.Code != "" {
		sess, err := s.backend.ExchangeCode(ctx, creds.Code)
		if err != nil {
			res.Faults = append(res.Faults, fmt.Errorf("exchange code: %w", err))
			return res
		}
		res.Session = sess
		res.Identity = &sess.User
		token = sess.AccessToken
	}

	if token == "" {
		return res
	}

	if res.Identity == nil || res.Identity.ID == "" {
		id, err := s.backend.GetUser(ctx, token)
		if err != nil {
			res.Faults = append(res.Faults, fmt.Errorf("fetch user: %w", err))
			res.Identity = nil
			return res
		}
		res.Identity = id
	}

	profile, err := s.ensureProfile(ctx, res.Identity)
	if err != nil {
		// Default-role handling downstream; the request still proceeds.
		res.Faults = append(res.Faults, fmt.Errorf("resolve profile: %w", err))
		return res
	}
	res.Profile = profile

	return res
}

// ensureProfile fetches the profile for an identity, creating it with role
// user on first sight. The insert is idempotent per identity: once the row
// exists, later resolutions only read it.
func (s *sessionService) ensureProfile(ctx context.Context, id *model.Identity) (*model.Profile, error) {
	p, err := s.profiles.FindByIdentity(ctx, id.ID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	fresh := &model.Profile{
		ID:         uuid.New().String(),
		IdentityID: id.ID,
		Email:      id.Email,
		FullName:   id.FullName,
		Role:       model.RoleUser,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := s.profiles.Create(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return created, nil
}
