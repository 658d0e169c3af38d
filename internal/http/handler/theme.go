package handler

import (
	"github.com/gofiber/fiber/v2"

	"mygpt/internal/theme"
)

// ThemeUpdate sets the theme-preference cookie from the form field
// "theme". Invalid values get a 400 with no Set-Cookie; non-POST methods
// are rejected by the router.
func ThemeUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := c.FormValue("theme")
		if !theme.Valid(v) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid theme"})
		}

		c.Cookie(theme.NewCookie(v))
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"theme": v})
	}
}
