package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mygpt/internal/auth"
	"mygpt/internal/http/middleware"
	"mygpt/internal/service"
	"mygpt/internal/session"
)

// defaultSessionTTL applies when the backend omits expires_in.
const defaultSessionTTL = 24 * time.Hour

// AuthCallback handles the OAuth return leg: it exchanges the one-time
// code for a session, issues the session cookie and redirects by role.
// Any exchange failure sends the visitor back to the login page.
func AuthCallback(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Query("code")
		if code == "" {
			return c.Redirect(auth.PathLogin, fiber.StatusFound)
		}

		res := sessions.Resolve(c.UserContext(), service.Credentials{Code: code})
		middleware.LogFaults(c, res.Faults)

		if !res.Authenticated() || res.Session == nil {
			return c.Redirect(auth.PathLogin, fiber.StatusFound)
		}

		ttl := defaultSessionTTL
		if res.Session.ExpiresIn > 0 {
			ttl = time.Duration(res.Session.ExpiresIn) * time.Second
		}
		session.SetCookie(c, res.Session.AccessToken, time.Now().Add(ttl))

		return c.Redirect(auth.RedirectTarget(res.Identity, res.Profile), fiber.StatusFound)
	}
}

// Logout revokes the backend session best-effort, clears the cookie and
// returns to the login page. It is idempotent.
func Logout(backend auth.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := session.Token(c); token != "" {
			_ = backend.SignOut(c.UserContext(), token)
		}
		session.ClearCookie(c)
		return c.Redirect(auth.PathLogin, fiber.StatusFound)
	}
}
