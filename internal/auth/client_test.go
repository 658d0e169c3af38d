package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mygpt/internal/config"
)

func newBackend(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.AuthConfig{URL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return c, srv
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(config.AuthConfig{APIKey: "k"})
	assert.Error(t, err)

	_, err = NewClient(config.AuthConfig{URL: "https://auth.example.com"})
	assert.Error(t, err)
}

func TestExchangeCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("apikey"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "code-123", r.PostForm.Get("code"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"tok","expires_in":3600,"user":{"id":"u1","email":"u1@example.com"}}`))
		})

		sess, err := c.ExchangeCode(context.Background(), "code-123")
		require.NoError(t, err)
		assert.Equal(t, "tok", sess.AccessToken)
		assert.Equal(t, 3600, sess.ExpiresIn)
		assert.Equal(t, "u1", sess.User.ID)
	})

	t.Run("backend rejects code", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
		})

		_, err := c.ExchangeCode(context.Background(), "stale")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_grant")
	})

	t.Run("missing access token in response", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := c.ExchangeCode(context.Background(), "code-123")
		assert.Error(t, err)
	})

	t.Run("empty code rejected locally", func(t *testing.T) {
		c, srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("backend must not be called")
		})
		_ = srv

		_, err := c.ExchangeCode(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			w.Write([]byte(`{"id":"u1","email":"u1@example.com","full_name":"User One"}`))
		})

		id, err := c.GetUser(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "u1", id.ID)
		assert.Equal(t, "User One", id.FullName)
	})

	t.Run("expired token", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"msg":"JWT expired"}`))
		})

		_, err := c.GetUser(context.Background(), "old")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT expired")
	})
}

func TestSignOut(t *testing.T) {
	var called bool
	c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.SignOut(context.Background(), "tok"))
	assert.True(t, called)
}
