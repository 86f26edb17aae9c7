package controllers

import (
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns entity counts and the latest inquiries for the
// admin landing page.
func GetDashboardStats(c *gin.Context) {
	stats := make(map[string]interface{})

	type countSpec struct {
		key   string
		model interface{}
	}
	for _, spec := range []countSpec{
		{"products", &models.Product{}},
		{"news", &models.News{}},
		{"cases", &models.CaseStudy{}},
		{"inquiries", &models.Inquiry{}},
		{"quotes", &models.QuoteRequest{}},
		{"media_files", &models.MediaFile{}},
		{"content_blocks", &models.PageContent{}},
	} {
		var count int64
		if err := config.DB.Model(spec.model).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
			return
		}
		stats[spec.key] = count
	}

	var newInquiries int64
	config.DB.Model(&models.Inquiry{}).Where("status = ?", models.InquiryStatusNew).Count(&newInquiries)
	stats["new_inquiries"] = newInquiries

	var pendingQuotes int64
	config.DB.Model(&models.QuoteRequest{}).Where("status = ?", models.QuoteStatusPending).Count(&pendingQuotes)
	stats["pending_quotes"] = pendingQuotes

	var recentInquiries []models.Inquiry
	config.DB.Order("created_at DESC").Limit(5).Find(&recentInquiries)
	stats["recent_inquiries"] = recentInquiries

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
