package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech44/study_quiz/handlers"
	"github.com/kipkoech44/study_quiz/middleware"
)

func ProgressRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	progress := api.Group("/progress", middleware.Protected())
	progress.Get("", h.GetMyProgress)
	progress.Post("", h.AddProgress)
}
