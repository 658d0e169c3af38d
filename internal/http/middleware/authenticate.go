package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"mygpt/internal/service"
	"mygpt/internal/session"
)

// ResolutionLocalKey is the key under which the session resolution is
// stored in Fiber's context locals.
const ResolutionLocalKey = "session_resolution"

// Authenticate resolves the session cookie once per request and stores the
// resolution in context locals. It never rejects: unauthenticated requests
// pass through with an empty resolution, and each handler decides whether
// to redirect or answer 401. Resolver faults are logged here, the one
// place that sees every resolution.
func Authenticate(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := sessions.Resolve(c.UserContext(), service.Credentials{
			Token: session.Token(c),
		})

		LogFaults(c, res.Faults)

		c.Locals(ResolutionLocalKey, res)
		return c.Next()
	}
}

// LogFaults writes one warn line per non-fatal resolver fault. Handlers
// that resolve directly (the OAuth callback) use it too.
func LogFaults(c *fiber.Ctx, faults []error) {
	for _, fault := range faults {
		logFault(c, fault)
	}
}

// ResolutionFromCtx returns the stored resolution, or an empty one when
// the middleware did not run.
func ResolutionFromCtx(c *fiber.Ctx) *service.Resolution {
	if v := c.Locals(ResolutionLocalKey); v != nil {
		if res, ok := v.(*service.Resolution); ok {
			return res
		}
	}
	return &service.Resolution{}
}

func logFault(c *fiber.Ctx, fault error) {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	entry := map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "warn",
		"msg":        "session_resolution_fault",
		"request_id": rid,
		"path":       c.Path(),
		"error":      fault.Error(),
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
