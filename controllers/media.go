package controllers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"led-admin-api/config"
	"led-admin-api/models"
	"led-admin-api/services"
	"led-admin-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Extension allow-list per stored file type.
var allowedExtensions = map[string]string{
	"jpg":  models.FileTypeImage,
	"jpeg": models.FileTypeImage,
	"png":  models.FileTypeImage,
	"gif":  models.FileTypeImage,
	"webp": models.FileTypeImage,
	"mp4":  models.FileTypeVideo,
	"webm": models.FileTypeVideo,
	"mov":  models.FileTypeVideo,
	"pdf":  models.FileTypeDocument,
}

// UploadMedia ingests one uploaded file: validate, register the DB row,
// then write the admin copy and the public-assets copy. Images wider than
// the configured threshold are downscaled for the public copy. If any disk
// write fails the registry row is removed again.
func UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	category := utils.SanitizeFilename(c.PostForm("category"))
	if category == "" || category == "file" {
		category = "general"
	}

	ext := utils.FileExtension(header.Filename)
	fileType, ok := allowedExtensions[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if header.Size > config.App.Media.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File size exceeds %dMB limit", config.App.Media.MaxUploadSize/(1024*1024))})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, config.App.Media.MaxUploadSize+1))
	if err != nil || int64(len(data)) > config.App.Media.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	// Randomized filename: original stem + uuid fragment.
	stem := utils.SanitizeFilename(header.Filename)
	suffix := strings.Split(uuid.NewString(), "-")[0]
	filename := fmt.Sprintf("%s_%s.%s", stem, suffix, ext)

	// Downscale oversized images for the public copy. The public copy is
	// re-encoded as JPEG, so its name switches extension when that happens.
	publicData := data
	publicFilename := filename
	if fileType == models.FileTypeImage {
		resized, didResize, rerr := services.DownscaleImage(data, config.App.Media.ImageMaxWidth, config.App.Media.JPEGQuality)
		if rerr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a valid image"})
			return
		}
		if didResize {
			publicData = resized
			publicFilename = fmt.Sprintf("%s_%s.jpg", stem, suffix)
		}
	}

	adminPath := filepath.Join(config.App.Media.UploadPath, category, filename)
	publicPath := filepath.Join(config.App.Media.PublicPath, category, publicFilename)

	media := models.MediaFile{
		Filename:     filename,
		OriginalName: header.Filename,
		Category:     category,
		FileType:     fileType,
		FileSize:     header.Size,
		MimeType:     header.Header.Get("Content-Type"),
		FilePath:     adminPath,
		PublicPath:   publicPath,
	}
	if username, exists := c.Get("username"); exists {
		media.UploadedBy = username.(string)
	}

	// Row first, files second; compensate on failure.
	if err := config.DB.Create(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register upload"})
		return
	}

	if err := writeFileAt(adminPath, data); err == nil {
		err = writeFileAt(publicPath, publicData)
	}
	if err != nil {
		log.Printf("media upload write failed, rolling back row %d: %v", media.ID, err)
		os.Remove(adminPath)
		os.Remove(publicPath)
		config.DB.Delete(&media)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": media})
}

func writeFileAt(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetMediaFiles lists the upload registry with optional filters
func GetMediaFiles(c *gin.Context) {
	query := config.DB.Model(&models.MediaFile{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if fileType := c.Query("type"); fileType != "" {
		query = query.Where("file_type = ?", fileType)
	}

	var files []models.MediaFile
	if err := query.Order("created_at DESC").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": files, "count": len(files)})
}

// DeleteMedia removes the registry row and both on-disk copies
func DeleteMedia(c *gin.Context) {
	var media models.MediaFile
	if err := config.DB.Where("id = ?", c.Param("id")).First(&media).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media file not found"})
		return
	}

	if err := config.DB.Delete(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media file"})
		return
	}

	// Physical cleanup is best-effort; a missing file is not an error.
	for _, path := range []string{media.FilePath, media.PublicPath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove media file %s: %v", path, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Media file deleted"})
}
