package controllers

import (
	"net/http"
	"time"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
)

type CaseStudyCreateRequest struct {
	TitleEn       string `json:"title_en" binding:"required"`
	TitleZh       string `json:"title_zh"`
	DescriptionEn string `json:"description_en"`
	DescriptionZh string `json:"description_zh"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Client        string `json:"client"`
	ImageURL      string `json:"image_url"`
	ProjectDate   string `json:"project_date"` // YYYY-MM-DD
	Status        string `json:"status"`
}

func parseProjectDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetCaseStudies lists case studies with optional filters
func GetCaseStudies(c *gin.Context) {
	query := config.DB.Model(&models.CaseStudy{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var cases []models.CaseStudy
	if err := query.Order("created_at DESC").Find(&cases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch case studies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cases, "count": len(cases)})
}

// GetCaseStudy returns one case study
func GetCaseStudy(c *gin.Context) {
	var item models.CaseStudy
	if err := config.DB.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// CreateCaseStudy inserts a case study
func CreateCaseStudy(c *gin.Context) {
	var req CaseStudyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title_en is required"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.CaseStatusActive
	}
	if !models.ValidCaseStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case status"})
		return
	}

	projectDate, err := parseProjectDate(req.ProjectDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_date must be YYYY-MM-DD"})
		return
	}

	item := models.CaseStudy{
		TitleEn:       req.TitleEn,
		TitleZh:       req.TitleZh,
		DescriptionEn: req.DescriptionEn,
		DescriptionZh: req.DescriptionZh,
		Category:      req.Category,
		Location:      req.Location,
		Client:        req.Client,
		ImageURL:      req.ImageURL,
		ProjectDate:   projectDate,
		Status:        status,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case study"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// UpdateCaseStudy merges submitted fields into an existing case study
func UpdateCaseStudy(c *gin.Context) {
	var item models.CaseStudy
	if err := config.DB.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
		return
	}

	type CaseStudyUpdateRequest struct {
		TitleEn       *string `json:"title_en"`
		TitleZh       *string `json:"title_zh"`
		DescriptionEn *string `json:"description_en"`
		DescriptionZh *string `json:"description_zh"`
		Category      *string `json:"category"`
		Location      *string `json:"location"`
		Client        *string `json:"client"`
		ImageURL      *string `json:"image_url"`
		ProjectDate   *string `json:"project_date"`
		Status        *string `json:"status"`
	}

	var req CaseStudyUpdateRequest
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
	if req.DescriptionEn != nil {
		updates["description_en"] = *req.DescriptionEn
	}
	if req.DescriptionZh != nil {
		updates["description_zh"] = *req.DescriptionZh
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.ProjectDate != nil {
		projectDate, err := parseProjectDate(*req.ProjectDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "project_date must be YYYY-MM-DD"})
			return
		}
		updates["project_date"] = projectDate
	}
	if req.Status != nil {
		if !models.ValidCaseStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case status"})
			return
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case study"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DeleteCaseStudy removes a case study
func DeleteCaseStudy(c *gin.Context) {
	var item models.CaseStudy
	if err := config.DB.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case study"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Case study deleted"})
}
