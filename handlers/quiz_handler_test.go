package handlers

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kipkoech44/study_quiz/models"
	"github.com/kipkoech44/study_quiz/store"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newQuizTestApp mounts the v1 question and progress handlers behind a stub
// that plants the JWT locals Protected() would normally set.
func newQuizTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Question{}, &models.Answer{}, &models.UserData{}))

	h := New(store.New(db))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"user_id": float64(42),
			"role":    "admin",
		}})
		return c.Next()
	})
	app.Get("/api/v1/questions", h.ListQuestions)
	app.Post("/api/v1/questions", h.CreateQuestion)
	app.Get("/api/v1/progress", h.GetMyProgress)
	app.Post("/api/v1/progress", h.AddProgress)
	return app
}

func TestCreateAndListQuestions(t *testing.T) {
	app := newQuizTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/questions", map[string]interface{}{
		"text": "2+2=?",
		"answers": []map[string]interface{}{
			{"text": "4", "isCorrect": true},
			{"text": "5", "isCorrect": false},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, body["answers"], 2)
	require.Empty(t, body["answerErrors"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/questions", nil)
	require.Equal(t, http.StatusOK, status)

	listed := body["data"].([]interface{})
	require.Len(t, listed, 1)
	first := listed[0].(map[string]interface{})
	require.Equal(t, "2+2=?", first["question"].(map[string]interface{})["text"])
	require.Len(t, first["answers"], 2)
}

func TestCreateQuestionRejectsMissingText(t *testing.T) {
	app := newQuizTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/questions", map[string]interface{}{
		"answers": []map[string]interface{}{{"text": "4"}},
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, body["error"])
}

func TestProgressRoundTrip(t *testing.T) {
	app := newQuizTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/progress", map[string]interface{}{
		"time_spent": 120,
		"high_score": 9001,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "success", body["status"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/progress", nil)
	require.Equal(t, http.StatusOK, status)

	records := body["data"].([]interface{})
	require.Len(t, records, 1)
	record := records[0].(map[string]interface{})
	require.Equal(t, float64(42), record["userId"])
	require.Equal(t, float64(120), record["timeSpent"])
	require.Equal(t, float64(9001), record["highScore"])
}
