package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AddProgressRequest struct {
	TimeSpent int `json:"time_spent" validate:"gte=0"`
	HighScore int `json:"high_score" validate:"gte=0"`
}

func userIDFromToken(c *fiber.Ctx) uint {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return uint(claims["user_id"].(float64))
}

func (h *Handler) GetMyProgress(c *fiber.Ctx) error {
	userID := userIDFromToken(c)

	records, err := h.Store.UserData(userID)
	if err != nil {
		log.Printf("failed to load progress for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load progress"})
	}
	return c.JSON(fiber.Map{"data": records})
}

func (h *Handler) AddProgress(c *fiber.Ctx) error {
	userID := userIDFromToken(c)

	var req AddProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := h.Store.AddUserData(userID, req.TimeSpent, req.HighScore)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  fiber.Map{"message": err.Error()},
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   record,
	})
}
