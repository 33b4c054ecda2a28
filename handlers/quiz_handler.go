package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech44/study_quiz/store"
)

type CreateQuestionRequest struct {
	Text    string              `json:"text" validate:"required"`
	Answers []store.AnswerInput `json:"answers" validate:"dive"`
}

func (h *Handler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.Store.QuestionsWithAnswers()
	if err != nil {
		log.Printf("failed to load questions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}
	return c.JSON(fiber.Map{"data": questions})
}

// CreateQuestion is the admin bulk create: one question plus its answers.
// Answers that fail to insert are reported in answerErrors while the rest
// go through, so a 201 can still carry partial failure.
func (h *Handler) CreateQuestion(c *fiber.Ctx) error {
	var req CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.Store.CreateQuestionWithAnswers(req.Text, req.Answers)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
