package handlers

import (
	"log"
	"time"

	config "github.com/kipkoech44/study_quiz/configs"
	"github.com/kipkoech44/study_quiz/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// GetUser is the legacy credential lookup: GET /user with email+password in
// the body, HTTP 200 no matter what, the user (or null) under "data".
func (h *Handler) GetUser(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"data": nil})
	}

	user, err := h.Store.FindUserByCredentials(req.Email, req.Password)
	if err != nil {
		log.Printf("user lookup failed: %v", err)
		return c.JSON(fiber.Map{"data": nil})
	}
	if user == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": user})
}

// Signup creates a user. Failures (duplicate email included) ride inside
// the 200 response body as {user:null, error:{message}}.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"data": fiber.Map{
			"user":  nil,
			"error": fiber.Map{"message": "cannot parse request body"},
		}})
	}

	hashedPassword := ""
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return c.JSON(fiber.Map{"data": fiber.Map{
				"user":  nil,
				"error": fiber.Map{"message": "failed to hash password"},
			}})
		}
		hashedPassword = hashed
	}

	user, err := h.Store.CreateUser(req.Email, req.FirstName, req.LastName, hashedPassword)
	if err != nil {
		return c.JSON(fiber.Map{"data": fiber.Map{
			"user":  nil,
			"error": fiber.Map{"message": err.Error()},
		}})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"user": user}})
}

// Login is the legacy login. The old implementation blew up when the lookup
// returned a failure instead of a user; here the failure branch is explicit
// and reported as {status:"error"}. Bad credentials and lookup failures get
// the same message so the response does not reveal which field was wrong.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{
			"status": "error",
			"error":  fiber.Map{"message": "cannot parse request body"},
		})
	}

	user, err := h.Store.FindUserByCredentials(req.Email, req.Password)
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		user = nil
	}
	if user == nil {
		return c.JSON(fiber.Map{
			"status": "error",
			"error":  fiber.Map{"message": "invalid email or password"},
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   user,
	})
}

// TokenLogin backs the versioned API: same credential check, but issues a
// JWT for the protected routes instead of echoing the user.
func (h *Handler) TokenLogin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.Store.FindUserByCredentials(req.Email, req.Password)
	if err != nil {
		log.Printf("token login lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up user"})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": t})
}
