package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech44/study_quiz/handlers"
	"github.com/kipkoech44/study_quiz/middleware"
)

func QuizRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	questions := api.Group("/questions")
	questions.Get("", h.ListQuestions)
	questions.Post("", middleware.Protected(), middleware.AdminRequired(), h.CreateQuestion)
}
