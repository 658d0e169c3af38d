package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mygpt/internal/auth"
	"mygpt/internal/http/middleware"
	"mygpt/internal/service"
)

// RegisterRoutes wires every application route onto the Fiber app. Page
// routes and the /api group share the session middleware; probes and the
// login page stay open.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	sessions service.SessionService,
	uploads service.UploadService,
	gpts service.GPTService,
	backend auth.Client,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get(auth.PathLogin, LoginPage())
	app.Get("/auth/callback", AuthCallback(sessions))
	app.Post("/auth/logout", Logout(backend))

	resolve := middleware.Authenticate(sessions)

	app.Get(auth.PathDashboard, resolve, Dashboard())
	app.Get(auth.PathAdmin, resolve, AdminArea())
	app.Get(auth.PathUser, resolve, UserArea())

	api := app.Group("/api", resolve)
	api.Post("/theme", ThemeUpdate())
	api.Post("/upload", UploadFiles(uploads))
	api.Get("/files/*", FileDownload(uploads))

	api.Get("/gpts", ListGPTs(gpts))
	api.Post("/gpts", CreateGPT(gpts))
	api.Get("/gpts/:id", GetGPT(gpts))
	api.Delete("/gpts/:id", DeleteGPT(gpts))
	api.Get("/gpts/:id/messages", ListMessages(gpts))
	api.Post("/gpts/:id/messages", AppendMessage(gpts))
	api.Delete("/gpts/:id/messages", ClearMessages(gpts))
}
