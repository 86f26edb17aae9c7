package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestLoginSeededAdmin(t *testing.T) {
	router := setupTestEnv(t)

	w := doJSON(router, "POST", "/api/v1/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.Username != "admin" {
		t.Errorf("expected username admin, got %q", resp.User.Username)
	}
	if resp.User.Role != "super_admin" {
		t.Errorf("expected seeded admin to be super_admin, got %q", resp.User.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTestEnv(t)

	w := doJSON(router, "POST", "/api/v1/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// Unknown user gets the same generic answer
	w = doJSON(router, "POST", "/api/v1/login", "", map[string]string{
		"username": "nobody",
		"password": "admin123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := setupTestEnv(t)

	w := doJSON(router, "GET", "/api/v1/products", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/v1/products", "not-a-valid-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a garbage token, got %d", w.Code)
	}

	token := login(t, router, "admin", "admin123")
	w = doJSON(router, "GET", "/api/v1/products", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChangePassword(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := doJSON(router, "PUT", "/api/v1/change-password", token, map[string]string{
		"current_password": "wrong",
		"new_password":     "newpassword1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", w.Code)
	}

	w = doJSON(router, "PUT", "/api/v1/change-password", token, map[string]string{
		"current_password": "admin123",
		"new_password":     "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a weak new password, got %d", w.Code)
	}

	w = doJSON(router, "PUT", "/api/v1/change-password", token, map[string]string{
		"current_password": "admin123",
		"new_password":     "newpassword1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Old password no longer works, new one does
	w = doJSON(router, "POST", "/api/v1/login", "", map[string]string{
		"username": "admin", "password": "admin123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected old password to be rejected, got %d", w.Code)
	}
	login(t, router, "admin", "newpassword1")
}
