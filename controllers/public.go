package controllers

import (
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"
	"led-admin-api/services"
	"led-admin-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===== Unauthenticated read API consumed by the marketing pages =====

// PublicProducts returns active products with their images and videos
func PublicProducts(c *gin.Context) {
	query := config.DB.Model(&models.Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("status = ?", models.ProductStatusActive)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "count": len(products)})
}

// PublicProduct returns one active product
func PublicProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("id = ? AND status = ?", c.Param("id"), models.ProductStatusActive).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// PublicNews returns published news
func PublicNews(c *gin.Context) {
	query := config.DB.Model(&models.News{}).Where("status = ?", models.NewsStatusPublished)

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

// PublicNewsItem returns one published news entry
func PublicNewsItem(c *gin.Context) {
	var item models.News
	if err := config.DB.Where("id = ? AND status = ?", c.Param("id"), models.NewsStatusPublished).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// PublicCases returns active case studies
func PublicCases(c *gin.Context) {
	var cases []models.CaseStudy
	if err := config.DB.Where("status = ?", models.CaseStatusActive).
		Order("created_at DESC").Find(&cases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch case studies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cases, "count": len(cases)})
}

// PublicPageContent returns the active blocks of one page, in display order
func PublicPageContent(c *gin.Context) {
	var blocks []models.PageContent
	if err := config.DB.
		Where("page_name = ? AND status = ?", c.Param("page"), models.ContentStatusActive).
		Order("sort_order ASC").Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": blocks, "count": len(blocks)})
}

// ===== Unauthenticated write API (contact form, quote form) =====

type ContactRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Company         string `json:"company"`
	Phone           string `json:"phone"`
	ProductInterest string `json:"product_interest"`
	Message         string `json:"message" binding:"required"`
}

// PublicContact creates an inquiry from the contact form
func PublicContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and message are required"})
		return
	}

	name := utils.SanitizeInput(req.Name)
	message := utils.SanitizeInput(req.Message)
	if name == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and message are required"})
		return
	}

	inquiry := models.Inquiry{
		Name:            name,
		Email:           req.Email,
		Company:         utils.SanitizeInput(req.Company),
		Phone:           utils.SanitizeInput(req.Phone),
		ProductInterest: utils.SanitizeInput(req.ProductInterest),
		Message:         message,
		Status:          models.InquiryStatusNew,
	}
	if err := config.DB.Create(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}

	services.NotifyNewInquiry(inquiry)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"id": inquiry.ID}})
}

type QuoteFormRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	ProductType  string `json:"product_type" binding:"required"`
	DisplaySize  string `json:"display_size"`
	Quantity     int    `json:"quantity"`
	Requirements string `json:"requirements"`
	Timeline     string `json:"timeline"`
	Budget       string `json:"budget"`
}

// PublicQuote creates a quote request from the quote form
func PublicQuote(c *gin.Context) {
	var req QuoteFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and product_type are required"})
		return
	}

	name := utils.SanitizeInput(req.Name)
	productType := utils.SanitizeInput(req.ProductType)
	if name == "" || productType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and product_type are required"})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	quote := models.QuoteRequest{
		Name:         name,
		Email:        req.Email,
		Company:      utils.SanitizeInput(req.Company),
		Phone:        utils.SanitizeInput(req.Phone),
		ProductType:  productType,
		DisplaySize:  utils.SanitizeInput(req.DisplaySize),
		Quantity:     quantity,
		Requirements: utils.SanitizeInput(req.Requirements),
		Timeline:     utils.SanitizeInput(req.Timeline),
		Budget:       utils.SanitizeInput(req.Budget),
		Status:       models.QuoteStatusPending,
	}
	if err := config.DB.Create(&quote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote request"})
		return
	}

	services.NotifyNewQuote(quote)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"id": quote.ID}})
}
