package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"led-admin-api/config"
	"led-admin-api/routes"

	"github.com/gin-gonic/gin"
)

// setupTestEnv builds a router backed by a fresh file-backed SQLite database
// in a temp dir, migrated and seeded exactly like a first production run.
func setupTestEnv(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		Port: "0",
		Env:  "production", // keep SQL logging quiet in tests
		DB: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(dir, "test.db"),
		},
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			ExpireHours: 1,
		},
		Media: config.MediaConfig{
			UploadPath:    filepath.Join(dir, "uploads"),
			PublicPath:    filepath.Join(dir, "assets"),
			MaxUploadSize: 10 * 1024 * 1024,
			ImageMaxWidth: 100,
			JPEGQuality:   85,
		},
	}
	config.App = cfg

	if err := config.InitDB(cfg); err != nil {
		t.Fatalf("Failed to initialize test DB: %v", err)
	}

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

// login authenticates against the seeded credentials and returns the token.
func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(router, "POST", "/api/v1/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response missing token: %s", w.Body.String())
	}
	return resp.Token
}

// doJSON performs a request with an optional bearer token and JSON payload.
func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

// envelope decodes the standard {"success": true, "data": ...} response body.
func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %s", w.Body.String())
	}
	return resp
}
