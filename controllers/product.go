package controllers

import (
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductImageInput struct {
	ID        int    `json:"id"`
	URL       string `json:"url" binding:"required"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
	IsPrimary bool   `json:"is_primary"`
}

type ProductVideoInput struct {
	ID        int    `json:"id"`
	URL       string `json:"url" binding:"required"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
}

type ProductCreateRequest struct {
	NameEn         string              `json:"name_en" binding:"required"`
	NameZh         string              `json:"name_zh"`
	DescriptionEn  string              `json:"description_en"`
	DescriptionZh  string              `json:"description_zh"`
	Category       string              `json:"category"`
	Specifications string              `json:"specifications"`
	Features       string              `json:"features"`
	Price          float64             `json:"price"`
	Status         string              `json:"status"`
	Images         []ProductImageInput `json:"images"`
	Videos         []ProductVideoInput `json:"videos"`
}

// GetProducts lists products with optional status/category filters
func GetProducts(c *gin.Context) {
	query := config.DB.Model(&models.Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") })

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

// GetProduct returns one product by id
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// CreateProduct inserts a product and its image/video rows in one transaction
func CreateProduct(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en is required and image/video urls must be set"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProductStatusDraft
	}
	if !models.ValidProductStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product status"})
		return
	}

	product := models.Product{
		NameEn:         req.NameEn,
		NameZh:         req.NameZh,
		DescriptionEn:  req.DescriptionEn,
		DescriptionZh:  req.DescriptionZh,
		Category:       req.Category,
		Specifications: req.Specifications,
		Features:       req.Features,
		Price:          req.Price,
		Status:         status,
	}
	for _, img := range req.Images {
		product.Images = append(product.Images, models.ProductImage{
			URL:       img.URL,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
			IsPrimary: img.IsPrimary,
		})
	}
	for _, vid := range req.Videos {
		product.Videos = append(product.Videos, models.ProductVideo{
			URL:       vid.URL,
			Title:     vid.Title,
			SortOrder: vid.SortOrder,
		})
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&product).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

// UpdateProduct merges submitted fields into an existing product. When the
// request carries images/videos the child rows are replaced wholesale inside
// the same transaction.
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	type ProductUpdateRequest struct {
		NameEn         *string             `json:"name_en"`
		NameZh         *string             `json:"name_zh"`
		DescriptionEn  *string             `json:"description_en"`
		DescriptionZh  *string             `json:"description_zh"`
		Category       *string             `json:"category"`
		Specifications *string             `json:"specifications"`
		Features       *string             `json:"features"`
		Price          *float64            `json:"price"`
		Status         *string             `json:"status"`
		Images         []ProductImageInput `json:"images"`
		Videos         []ProductVideoInput `json:"videos"`
	}

	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.NameEn != nil {
		updates["name_en"] = *req.NameEn
	}
	if req.NameZh != nil {
		updates["name_zh"] = *req.NameZh
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
	if req.Specifications != nil {
		updates["specifications"] = *req.Specifications
	}
	if req.Features != nil {
		updates["features"] = *req.Features
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Status != nil {
		if !models.ValidProductStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product status"})
			return
		}
		updates["status"] = *req.Status
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Images != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			for _, img := range req.Images {
				row := models.ProductImage{
					ProductID: product.ID,
					URL:       img.URL,
					AltText:   img.AltText,
					SortOrder: img.SortOrder,
					IsPrimary: img.IsPrimary,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if req.Videos != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVideo{}).Error; err != nil {
				return err
			}
			for _, vid := range req.Videos {
				row := models.ProductVideo{
					ProductID: product.ID,
					URL:       vid.URL,
					Title:     vid.Title,
					SortOrder: vid.SortOrder,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	// Reload with children
	config.DB.Preload("Images").Preload("Videos").First(&product, product.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// DeleteProduct removes a product and, via FK cascade, its child rows
func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}
