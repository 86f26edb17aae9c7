package controllers

import (
	"net/http"
	"time"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

// GetQuotes lists quote requests, newest first, optionally filtered by status
func GetQuotes(c *gin.Context) {
	query := config.DB.Model(&models.QuoteRequest{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var quotes []models.QuoteRequest
	if err := query.Order("created_at DESC").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quote requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": quotes, "count": len(quotes)})
}

// GetQuote returns one quote request
func GetQuote(c *gin.Context) {
	var quote models.QuoteRequest
	if err := config.DB.Where("id = ?", c.Param("id")).First(&quote).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": quote})
}

// UpdateQuoteStatus sets the workflow status and stamps the handling admin
func UpdateQuoteStatus(c *gin.Context) {
	var quote models.QuoteRequest
	if err := config.DB.Where("id = ?", c.Param("id")).First(&quote).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote request not found"})
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
	if !models.ValidQuoteStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote status"})
		return
	}

	username, _ := c.Get("username")
	now := time.Now()
	updates := map[string]interface{}{
		"status":     req.Status,
		"handled_by": username,
		"handled_at": now,
	}
	if err := config.DB.Model(&quote).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": quote})
}

// DeleteQuote removes a quote request
func DeleteQuote(c *gin.Context) {
	var quote models.QuoteRequest
	if err := config.DB.Where("id = ?", c.Param("id")).First(&quote).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote request not found"})
		return
	}

	if err := config.DB.Delete(&quote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quote request deleted"})
}
