package controllers

import (
	"encoding/json"
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

type PageContentCreateRequest struct {
	PageName    string `json:"page_name" binding:"required"`
	SectionName string `json:"section_name" binding:"required"`
	ContentType string `json:"content_type"`
	TitleEn     string `json:"title_en"`
	TitleZh     string `json:"title_zh"`
	SubtitleEn  string `json:"subtitle_en"`
	SubtitleZh  string `json:"subtitle_zh"`
	BodyEn      string `json:"body_en"`
	BodyZh      string `json:"body_zh"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	LinkURL     string `json:"link_url"`
	Parameters  string `json:"parameters"`
	SortOrder   int    `json:"sort_order"`
	Status      string `json:"status"`
}

func validParametersJSON(s string) bool {
	if s == "" {
		return true
	}
	return json.Valid([]byte(s))
}

// GetPageContents lists CMS blocks, optionally for one page
func GetPageContents(c *gin.Context) {
	query := config.DB.Model(&models.PageContent{})

	if page := c.Query("page"); page != "" {
		query = query.Where("page_name = ?", page)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var blocks []models.PageContent
	if err := query.Order("page_name ASC, sort_order ASC").Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": blocks, "count": len(blocks)})
}

// GetPageContent returns one block
func GetPageContent(c *gin.Context) {
	var block models.PageContent
	if err := config.DB.Where("id = ?", c.Param("id")).First(&block).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content block not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": block})
}

// CreatePageContent inserts a CMS block. The (page_name, section_name) pair
// is unique; a duplicate returns 409.
func CreatePageContent(c *gin.Context) {
	var req PageContentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_name and section_name are required"})
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = models.ContentTypeText
	}
	if !models.ValidContentType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content_type"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.ContentStatusActive
	}
	if status != models.ContentStatusActive && status != models.ContentStatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if !validParametersJSON(req.Parameters) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parameters must be valid JSON"})
		return
	}

	var existing models.PageContent
	if err := config.DB.Where("page_name = ? AND section_name = ?", req.PageName, req.SectionName).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A block for this page/section already exists"})
		return
	}

	block := models.PageContent{
		PageName:    req.PageName,
		SectionName: req.SectionName,
		ContentType: contentType,
		TitleEn:     req.TitleEn,
		TitleZh:     req.TitleZh,
		SubtitleEn:  req.SubtitleEn,
		SubtitleZh:  req.SubtitleZh,
		BodyEn:      req.BodyEn,
		BodyZh:      req.BodyZh,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		LinkURL:     req.LinkURL,
		Parameters:  req.Parameters,
		SortOrder:   req.SortOrder,
		Status:      status,
	}
	if err := config.DB.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content block"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": block})
}

// UpdatePageContent merges submitted fields into an existing block
func UpdatePageContent(c *gin.Context) {
	var block models.PageContent
	if err := config.DB.Where("id = ?", c.Param("id")).First(&block).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content block not found"})
		return
	}

	type PageContentUpdateRequest struct {
		ContentType *string `json:"content_type"`
		TitleEn     *string `json:"title_en"`
		TitleZh     *string `json:"title_zh"`
		SubtitleEn  *string `json:"subtitle_en"`
		SubtitleZh  *string `json:"subtitle_zh"`
		BodyEn      *string `json:"body_en"`
		BodyZh      *string `json:"body_zh"`
		ImageURL    *string `json:"image_url"`
		VideoURL    *string `json:"video_url"`
		LinkURL     *string `json:"link_url"`
		Parameters  *string `json:"parameters"`
		SortOrder   *int    `json:"sort_order"`
		Status      *string `json:"status"`
	}

	var req PageContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.ContentType != nil {
		if !models.ValidContentType(*req.ContentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content_type"})
			return
		}
		updates["content_type"] = *req.ContentType
	}
	if req.TitleEn != nil {
		updates["title_en"] = *req.TitleEn
	}
	if req.TitleZh != nil {
		updates["title_zh"] = *req.TitleZh
	}
	if req.SubtitleEn != nil {
		updates["subtitle_en"] = *req.SubtitleEn
	}
	if req.SubtitleZh != nil {
		updates["subtitle_zh"] = *req.SubtitleZh
	}
	if req.BodyEn != nil {
		updates["body_en"] = *req.BodyEn
	}
	if req.BodyZh != nil {
		updates["body_zh"] = *req.BodyZh
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.LinkURL != nil {
		updates["link_url"] = *req.LinkURL
	}
	if req.Parameters != nil {
		if !validParametersJSON(*req.Parameters) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parameters must be valid JSON"})
			return
		}
		updates["parameters"] = *req.Parameters
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Status != nil {
		if *req.Status != models.ContentStatusActive && *req.Status != models.ContentStatusInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&block).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content block"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": block})
}

// DeletePageContent removes a block
func DeletePageContent(c *gin.Context) {
	var block models.PageContent
	if err := config.DB.Where("id = ?", c.Param("id")).First(&block).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content block not found"})
		return
	}

	if err := config.DB.Delete(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content block"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Content block deleted"})
}
