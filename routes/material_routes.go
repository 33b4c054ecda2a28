package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech44/study_quiz/handlers"
	"github.com/kipkoech44/study_quiz/middleware"
)

func MaterialRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	materials := api.Group("/materials")
	materials.Get("", h.ListMaterials)
	materials.Post("", middleware.Protected(), middleware.AdminRequired(), h.UploadMaterial)
}
