package handler

import (
	"github.com/gofiber/fiber/v2"

	"mygpt/internal/auth"
	"mygpt/internal/http/middleware"
	"mygpt/internal/session"
	"mygpt/internal/theme"
)

// LoginPage renders a minimal login stub; the real UI lives in the
// frontend, this keeps the redirect target resolvable.
func LoginPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Sign in</title></head>
<body><h1>Sign in</h1><a href="/auth/callback">Continue with your provider</a></body></html>`)
	}
}

// Dashboard is the post-login entry point: it never renders anything
// itself, it only forwards the visitor to the area their role grants.
// A stale cookie that no longer resolves is cleared on the way out.
func Dashboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := middleware.ResolutionFromCtx(c)

		if !res.Authenticated() {
			if session.Token(c) != "" {
				session.ClearCookie(c)
			}
			return c.Redirect(auth.PathLogin, fiber.StatusFound)
		}

		return c.Redirect(auth.RedirectTarget(res.Identity, res.Profile), fiber.StatusFound)
	}
}

// AdminArea serves the admin landing page; non-admins are bounced to the
// user area rather than getting an error.
func AdminArea() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := middleware.ResolutionFromCtx(c)
		if !res.Authenticated() {
			return c.Redirect(auth.PathLogin, fiber.StatusFound)
		}
		if target := auth.RedirectTarget(res.Identity, res.Profile); target != auth.PathAdmin {
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Type("html").SendString(pageHTML("Admin", theme.FromCtx(c)))
	}
}

// UserArea serves the standard landing page for any signed-in user.
func UserArea() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := middleware.ResolutionFromCtx(c)
		if !res.Authenticated() {
			return c.Redirect(auth.PathLogin, fiber.StatusFound)
		}
		return c.Type("html").SendString(pageHTML("Workspace", theme.FromCtx(c)))
	}
}

func pageHTML(title, themePref string) string {
	if themePref == "" {
		themePref = theme.Light
	}
	return `<!DOCTYPE html>
<html data-theme="` + themePref + `"><head><title>` + title + `</title></head>
<body><h1>` + title + `</h1></body></html>`
}
