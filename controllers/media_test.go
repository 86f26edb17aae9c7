package controllers_test

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func uploadFile(t *testing.T, router *gin.Engine, token, filename, category string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(content)
	mw.WriteField("category", category)
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/media/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := uploadFile(t, router, token, "malware.exe", "products", []byte("MZ..."))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.MediaFile{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected upload created %d registry rows", count)
	}
}

func TestUploadRejectsOversizePayload(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	// Shrink the cap so the fixture stays small
	config.App.Media.MaxUploadSize = 1024

	w := uploadFile(t, router, token, "huge.jpg", "products", bytes.Repeat([]byte{0xff}, 2048))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.MediaFile{}).Count(&count)
	if count != 0 {
		t.Errorf("oversize upload created %d registry rows", count)
	}

	for _, dir := range []string{config.App.Media.UploadPath, config.App.Media.PublicPath} {
		entries, err := os.ReadDir(dir)
		if err == nil && len(entries) > 0 {
			t.Errorf("oversize upload left files in %s", dir)
		}
	}

	// A payload at the cap still goes through the normal pipeline
	config.App.Media.MaxUploadSize = 1024 * 1024
	small := pngBytes(t, 10, 10)
	w = uploadFile(t, router, token, "ok.png", "products", small)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 after restoring the cap, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadSmallImageKeepsDimensions(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	// Test config caps image width at 100
	original := pngBytes(t, 80, 60)
	w := uploadFile(t, router, token, "small.png", "products", original)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var media models.MediaFile
	if err := config.DB.First(&media).Error; err != nil {
		t.Fatal("registry row missing")
	}

	data, err := os.ReadFile(media.PublicPath)
	if err != nil {
		t.Fatalf("public copy missing: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 60 {
		t.Errorf("small image was resized: %dx%d", cfg.Width, cfg.Height)
	}
	if !bytes.Equal(data, original) {
		t.Error("small image bytes changed")
	}

	if _, err := os.Stat(media.FilePath); err != nil {
		t.Errorf("admin copy missing: %v", err)
	}
}

func TestUploadLargeImageIsDownscaled(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := uploadFile(t, router, token, "banner.png", "banners", pngBytes(t, 300, 150))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var media models.MediaFile
	if err := config.DB.First(&media).Error; err != nil {
		t.Fatal("registry row missing")
	}

	data, err := os.ReadFile(media.PublicPath)
	if err != nil {
		t.Fatalf("public copy missing: %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 100 {
		t.Errorf("expected public copy width 100, got %d", cfg.Width)
	}
	if cfg.Height != 50 {
		t.Errorf("expected proportional height 50, got %d", cfg.Height)
	}
	if format != "jpeg" {
		t.Errorf("expected downscaled copy re-encoded as jpeg, got %s", format)
	}

	// Admin copy keeps the original
	adminData, err := os.ReadFile(media.FilePath)
	if err != nil {
		t.Fatalf("admin copy missing: %v", err)
	}
	adminCfg, _, err := image.DecodeConfig(bytes.NewReader(adminData))
	if err != nil {
		t.Fatal(err)
	}
	if adminCfg.Width != 300 {
		t.Errorf("admin copy was resized: width %d", adminCfg.Width)
	}
}

func TestDeleteMediaRemovesRowAndFiles(t *testing.T) {
	router := setupTestEnv(t)
	token := login(t, router, "admin", "admin123")

	w := uploadFile(t, router, token, "gone.png", "products", pngBytes(t, 50, 50))
	if w.Code != http.StatusCreated {
		t.Fatalf("upload failed: %d", w.Code)
	}

	var media models.MediaFile
	config.DB.First(&media)

	w = doJSON(router, "DELETE", "/api/v1/media/"+itoa(media.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d: %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.MediaFile{}).Count(&count)
	if count != 0 {
		t.Error("registry row survived delete")
	}
	if _, err := os.Stat(media.FilePath); !os.IsNotExist(err) {
		t.Error("admin copy survived delete")
	}
	if _, err := os.Stat(media.PublicPath); !os.IsNotExist(err) {
		t.Error("public copy survived delete")
	}
}
