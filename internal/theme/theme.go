package theme

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the theme preference cookie issued to every visitor who
// picks a theme.
const CookieName = "theme-preference"

const (
	Light = "light"
	Dark  = "dark"
)

const maxAge = 365 * 24 * time.Hour

// Valid reports whether v is an accepted theme value.
func Valid(v string) bool {
	return v == Light || v == Dark
}

// NewCookie builds the theme cookie for a validated value. Callers must
// check Valid first; an unknown value here is a programming error and
// yields a nil cookie.
func NewCookie(value string) *fiber.Cookie {
	if !Valid(value) {
		return nil
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// FromCtx reads the theme preference from the request. Absent or
// malformed cookies yield "".
func FromCtx(c *fiber.Ctx) string {
	v := c.Cookies(CookieName)
	if !Valid(v) {
		return ""
	}
	return v
}
