package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"led-admin-api/config"
	"led-admin-api/models"
)

func TestCreateAdminUserAndRoleEnforcement(t *testing.T) {
	router := setupTestEnv(t)
	rootToken := login(t, router, "admin", "admin123")

	w := doJSON(router, "POST", "/api/v1/users", rootToken, map[string]string{
		"username": "editor",
		"password": "editorpass1",
		"email":    "editor@example.com",
		"role":     "admin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate username
	w = doJSON(router, "POST", "/api/v1/users", rootToken, map[string]string{
		"username": "editor",
		"password": "anotherpass1",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	// The plain admin can use CRUD routes but not user management
	editorToken := login(t, router, "editor", "editorpass1")
	w = doJSON(router, "GET", "/api/v1/inquiries", editorToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin on inquiries, got %d", w.Code)
	}
	w = doJSON(router, "GET", "/api/v1/users", editorToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin on user management, got %d", w.Code)
	}
	w = doJSON(router, "DELETE", "/api/v1/products/1", editorToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin on product delete, got %d", w.Code)
	}
}

func TestDeleteAdminUserGuards(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	var root models.AdminUser
	config.DB.Where("username = ?", "admin").First(&root)

	// Cannot delete yourself
	w := doJSON(router, "DELETE", "/api/v1/users/"+itoa(root.ID), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 deleting own account, got %d", w.Code)
	}

	// Create and delete a second account
	w = doJSON(router, "POST", "/api/v1/users", token, map[string]string{
		"username": "temp",
		"password": "temppass123",
	})
	var created struct {
		Data models.AdminUser `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(router, "DELETE", "/api/v1/users/"+itoa(created.Data.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.AdminUser{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 remaining account, got %d", count)
	}
}
