package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"led-admin-api/models"
)

func TestSettingUpsert(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	// Seeded key exists
	w := doJSON(router, "GET", "/api/v1/settings/site_name", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for seeded setting, got %d", w.Code)
	}

	// Update an existing key
	w = doJSON(router, "PUT", "/api/v1/settings/site_name", token, map[string]string{
		"value": "Shenzhen LED Co.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert failed: %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "GET", "/api/v1/settings/site_name", token, nil)
	var got struct {
		Data models.Setting `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Data.Value != "Shenzhen LED Co." {
		t.Errorf("expected updated value, got %q", got.Data.Value)
	}

	// Insert a brand new key through the same route
	w = doJSON(router, "PUT", "/api/v1/settings/icp_number", token, map[string]string{
		"value":       "粤ICP备00000000号",
		"description": "ICP filing number shown in the site footer",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("insert via upsert failed: %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/v1/settings/icp_number", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for new key, got %d", w.Code)
	}
}

func TestSettingDelete(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := doJSON(router, "DELETE", "/api/v1/settings/site_name", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/v1/settings/site_name", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	w = doJSON(router, "DELETE", "/api/v1/settings/does_not_exist", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown key, got %d", w.Code)
	}
}
