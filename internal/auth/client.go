package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mygpt/internal/config"
	"mygpt/internal/model"
)

// Session is an authenticated backend session as returned by the
// code-for-session exchange. The access token is what later requests
// carry in the session cookie.
type Session struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int            `json:"expires_in"`
	User         model.Identity `json:"user"`
}

// Client is the minimal capability interface over the hosted auth backend.
// Implementations return identity facts only and make no auth decisions.
type Client interface {
	// ExchangeCode trades a one-time authorization code for a session.
	ExchangeCode(ctx context.Context, code string) (*Session, error)

	// GetUser returns the identity bound to an access token.
	GetUser(ctx context.Context, accessToken string) (*model.Identity, error)

	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error
}

// httpClient talks to the hosted backend over its REST surface.
// It is safe for concurrent use by multiple goroutines.
type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a backend auth client. A missing URL or API key is a
// configuration error and fails fast.
func NewClient(cfg config.AuthConfig) (Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("auth backend url is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("auth backend api key is required")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid auth backend url: %w", err)
	}

	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *httpClient) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	if code == "" {
		return nil, errors.New("exchange code is empty")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.apiKey)

	var sess Session
	if err := c.do(req, &sess); err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}
	if sess.AccessToken == "" {
		return nil, errors.New("backend returned no access token")
	}
	return &sess, nil
}

func (c *httpClient) GetUser(ctx context.Context, accessToken string) (*model.Identity, error) {
	if accessToken == "" {
		return nil, errors.New("access token is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var id model.Identity
	if err := c.do(req, &id); err != nil {
		return nil, fmt.Errorf("fetch user failed: %w", err)
	}
	if id.ID == "" {
		return nil, errors.New("backend returned no user id")
	}
	return &id, nil
}

func (c *httpClient) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/logout", bytes.NewReader(nil))
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return c.do(req, nil)
}

// do executes the request and decodes a JSON body into out when provided.
// Non-2xx responses are reported with the backend's error message but
// without leaking the body to callers further up.
func (c *httpClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"msg"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&e)
		msg := e.Message
		if msg == "" {
			msg = e.Error
		}
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("backend status %d: %s", resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
