package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the cookie carrying the backend access token.
const CookieName = "session-token"

// SetCookie issues the session cookie to the client. The cookie is
// HttpOnly and scoped to the whole site; SameSite=Lax so the OAuth
// callback redirect still carries it.
func SetCookie(c *fiber.Ctx, accessToken string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    accessToken,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Token extracts the access token from the request cookie, or "" when the
// cookie is absent.
func Token(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}
