package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech44/study_quiz/handlers"
)

// AuthRoutes mounts the legacy surface at the root (kept exactly where the
// old clients expect it) and the token login under /api/v1.
func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/user", h.GetUser)
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)

	api := app.Group("/api/v1")
	auth := api.Group("/auth")
	auth.Post("/login", h.TokenLogin)
}
