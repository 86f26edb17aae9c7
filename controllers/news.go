package controllers

import (
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

type NewsCreateRequest struct {
	TitleEn   string `json:"title_en" binding:"required"`
	TitleZh   string `json:"title_zh"`
	ContentEn string `json:"content_en"`
	ContentZh string `json:"content_zh"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	Author    string `json:"author"`
	Status    string `json:"status"`
}

// GetNewsList lists news with optional status/category filters
func GetNewsList(c *gin.Context) {
	query := config.DB.Model(&models.News{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var news []models.News
	if err := query.Order("created_at DESC").Find(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": news, "count": len(news)})
}

// GetNews returns one news entry
func GetNews(c *gin.Context) {
	var item models.News
	if err := config.DB.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// CreateNews inserts a news entry
func CreateNews(c *gin.Context) {
	var req NewsCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title_en is required"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.NewsStatusDraft
	}
	if !models.ValidNewsStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news status"})
		return
	}

	author := req.Author
	if author == "" {
		if username, ok := c.Get("username"); ok {
			author = username.(string)
		}
	}

	item := models.News{
		TitleEn:   req.TitleEn,
		TitleZh:   req.TitleZh,
		ContentEn: req.ContentEn,
		ContentZh: req.ContentZh,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Author:    author,
		Status:    status,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// UpdateNews merges submitted fields into an existing entry
func UpdateNews(c *gin.Context) {
	var item models.News
	if err := config.DB.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	type NewsUpdateRequest struct {
		TitleEn   *string `json:"title_en"`
		TitleZh   *string `json:"title_zh"`
		ContentEn *string `json:"content_en"`
		ContentZh *string `json:"content_zh"`
		Category  *string `json:"category"`
		ImageURL  *string `json:"image_url"`
		Author    *string `json:"author"`
		Status    *string `json:"status"`
	}

	var req NewsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.TitleEn != nil {
		updates["title_en"] = *req.TitleEn
	}
	if req.TitleZh != nil {
		updates["title_zh"] = *req.TitleZh
	}
	if req.ContentEn != nil {
		updates["content_en"] = *req.ContentEn
	}
	if req.ContentZh != nil {
		updates["content_zh"] = *req.ContentZh
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Status != nil {
		if !models.ValidNewsStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news status"})
			return
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DeleteNews removes a news entry
func DeleteNews(c *gin.Context) {
	var item models.News
	if err := config.DB.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "News deleted"})
}
