package controllers

import (
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GetSettings lists all key/value settings
func GetSettings(c *gin.Context) {
	var settings []models.Setting
	if err := config.DB.Order("key ASC").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings, "count": len(settings)})
}

// GetSetting returns one setting by key
func GetSetting(c *gin.Context) {
	var setting models.Setting
	if err := config.DB.Where("key = ?", c.Param("key")).First(&setting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": setting})
}

// UpsertSetting creates or updates a setting by key
func UpsertSetting(c *gin.Context) {
	type SettingRequest struct {
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	setting := models.Setting{
		Key:         c.Param("key"),
		Value:       req.Value,
		Description: req.Description,
	}
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}

	config.DB.Where("key = ?", setting.Key).First(&setting)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": setting})
}

// DeleteSetting removes a setting by key
func DeleteSetting(c *gin.Context) {
	var setting models.Setting
	if err := config.DB.Where("key = ?", c.Param("key")).First(&setting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}

	if err := config.DB.Delete(&setting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Setting deleted"})
}
