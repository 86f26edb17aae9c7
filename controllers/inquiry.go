package controllers

import (
	"net/http"
	"time"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

// GetInquiries lists inquiries, newest first, optionally filtered by status
func GetInquiries(c *gin.Context) {
	query := config.DB.Model(&models.Inquiry{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var inquiries []models.Inquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiries, "count": len(inquiries)})
}

// GetInquiry returns one inquiry
func GetInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := config.DB.Where("id = ?", c.Param("id")).First(&inquiry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
}

// UpdateInquiryStatus sets the workflow status and stamps the handling admin
func UpdateInquiryStatus(c *gin.Context) {
	var inquiry models.Inquiry
	if err := config.DB.Where("id = ?", c.Param("id")).First(&inquiry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !models.ValidInquiryStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry status"})
		return
	}

	username, _ := c.Get("username")
	now := time.Now()
	updates := map[string]interface{}{
		"status":     req.Status,
		"handled_by": username,
		"handled_at": now,
	}
	if err := config.DB.Model(&inquiry).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
}

// DeleteInquiry removes an inquiry
func DeleteInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := config.DB.Where("id = ?", c.Param("id")).First(&inquiry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	if err := config.DB.Delete(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Inquiry deleted"})
}
