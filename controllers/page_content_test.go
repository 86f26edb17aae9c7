package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"led-admin-api/models"
)

func TestPageContentCreateAndPublicRead(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := doJSON(router, "POST", "/api/v1/content", token, map[string]interface{}{
		"page_name":    "products",
		"section_name": "banner",
		"content_type": "image",
		"title_en":     "Our Products",
		"title_zh":     "产品中心",
		"image_url":    "/assets/banners/products.jpg",
		"sort_order":   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate page/section pair is a conflict
	w = doJSON(router, "POST", "/api/v1/content", token, map[string]interface{}{
		"page_name":    "products",
		"section_name": "banner",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate block, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/v1/public/content/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data []models.PageContent `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Data[0].TitleZh != "产品中心" {
		t.Errorf("unexpected public content: %+v", resp.Data)
	}
}

func TestPageContentInactiveHiddenFromPublic(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := doJSON(router, "POST", "/api/v1/content", token, map[string]interface{}{
		"page_name":    "home",
		"section_name": "promo",
		"title_en":     "Hidden Promo",
		"status":       "inactive",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/v1/public/content/home", "", nil)
	if strings.Contains(w.Body.String(), "Hidden Promo") {
		t.Error("inactive block leaked into the public API")
	}
}

func TestPageContentRejectsBadParameters(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := doJSON(router, "POST", "/api/v1/content", token, map[string]interface{}{
		"page_name":    "home",
		"section_name": "stats",
		"parameters":   "{not json",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid parameters JSON, got %d", w.Code)
	}
}

func TestPageContentUpdate(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := doJSON(router, "POST", "/api/v1/content", token, map[string]interface{}{
		"page_name":    "about",
		"section_name": "team",
		"title_en":     "Team",
	})
	var created struct {
		Data models.PageContent `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(router, "PUT", fmt.Sprintf("/api/v1/content/%d", created.Data.ID), token, map[string]interface{}{
		"body_en":    "We are a team of display engineers.",
		"sort_order": 3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "GET", fmt.Sprintf("/api/v1/content/%d", created.Data.ID), token, nil)
	var got struct {
		Data models.PageContent `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Data.BodyEn == "" || got.Data.SortOrder != 3 {
		t.Errorf("update not applied: %+v", got.Data)
	}
	if got.Data.TitleEn != "Team" {
		t.Errorf("untouched field changed: %+v", got.Data)
	}
}
