package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mygpt/internal/model"
	"mygpt/internal/service"
	serviceMocks "mygpt/internal/service/mocks"
	"mygpt/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger depends on RequestID for the request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestAuthenticate(t *testing.T) {
	newApp := func(mSvc *serviceMocks.MockSessionService) *fiber.App {
		app := fiber.New()
		app.Use(Authenticate(mSvc))
		app.Get("/whoami", func(c *fiber.Ctx) error {
			res := ResolutionFromCtx(c)
			if !res.Authenticated() {
				return c.SendString("anonymous")
			}
			return c.SendString(res.Identity.ID)
		})
		return app
	}

	t.Run("no cookie resolves to anonymous", func(t *testing.T) {
		mSvc := new(serviceMocks.MockSessionService)
		mSvc.On("Resolve", mock.Anything, service.Credentials{}).
			Return(&service.Resolution{})

		app := newApp(mSvc)
		req := httptest.NewRequest("GET", "/whoami", nil)
		resp, _ := app.Test(req)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, "anonymous", buf.String())
		mSvc.AssertExpectations(t)
	})

	t.Run("cookie token reaches the resolver", func(t *testing.T) {
		mSvc := new(serviceMocks.MockSessionService)
		mSvc.On("Resolve", mock.Anything, service.Credentials{Token: "tok-1"}).
			Return(&service.Resolution{Identity: &model.Identity{ID: "ident-1"}})

		app := newApp(mSvc)
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-1"})
		resp, _ := app.Test(req)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, "ident-1", buf.String())
		mSvc.AssertExpectations(t)
	})
}

func TestResolutionFromCtx_Empty(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(c *fiber.Ctx) error {
		res := ResolutionFromCtx(c)
		assert.NotNil(t, res)
		assert.False(t, res.Authenticated())
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/bare", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
