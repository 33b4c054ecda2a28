package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech44/study_quiz/models"
	"github.com/kipkoech44/study_quiz/store"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	h := New(store.New(db))

	app := fiber.New()
	app.Get("/user", h.GetUser)
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestSignupThenLogin(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"email":     "jane@example.com",
		"firstName": "Jane",
		"lastName":  "Doe",
		"password":  "s3cret",
	})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	require.Equal(t, "jane@example.com", user["email"])
	require.Nil(t, data["error"])

	status, body = doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email":    "jane@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "success", body["status"])
	require.Equal(t, "jane@example.com", body["data"].(map[string]interface{})["email"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]string{
		"email":     "jane@example.com",
		"firstName": "Jane",
		"lastName":  "Doe",
		"password":  "s3cret",
	}

	status, _ := doJSON(t, app, http.MethodPost, "/signup", payload)
	require.Equal(t, http.StatusOK, status)

	// same email again: still 200, failure encoded in the body
	status, body := doJSON(t, app, http.MethodPost, "/signup", payload)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	require.Nil(t, data["user"])
	errInfo := data["error"].(map[string]interface{})
	require.NotEmpty(t, errInfo["message"])
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"email":     "jane@example.com",
		"firstName": "Jane",
		"lastName":  "Doe",
		"password":  "s3cret",
	})

	status, body := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "error", body["status"])
	errInfo := body["error"].(map[string]interface{})
	require.Equal(t, "invalid email or password", errInfo["message"])
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(t)

	// the old implementation crashed on this path; now it is an explicit error
	status, body := doJSON(t, app, http.MethodPost, "/login", map[string]string{})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "error", body["status"])
}

func TestGetUser(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"email":     "jane@example.com",
		"firstName": "Jane",
		"lastName":  "Doe",
		"password":  "s3cret",
	})

	status, body := doJSON(t, app, http.MethodGet, "/user", map[string]string{
		"email":    "jane@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "jane@example.com", body["data"].(map[string]interface{})["email"])

	status, body = doJSON(t, app, http.MethodGet, "/user", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, body["data"])
}
