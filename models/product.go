package models

import (
	"time"
)

// Product status values. The column is free text in the database; handlers
// reject anything outside this set.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID             int       `gorm:"primaryKey;column:id" json:"id"`
	NameEn         string    `gorm:"column:name_en;size:255" json:"name_en"`
	NameZh         string    `gorm:"column:name_zh;size:255" json:"name_zh"`
	DescriptionEn  string    `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionZh  string    `gorm:"column:description_zh;type:text" json:"description_zh"`
	Category       string    `gorm:"column:category;size:100;index" json:"category"`
	Specifications string    `gorm:"column:specifications;type:text" json:"specifications"`
	Features       string    `gorm:"column:features;type:text" json:"features"`
	Price          float64   `gorm:"column:price" json:"price"`
	Status         string    `gorm:"column:status;size:20;default:draft;index" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Videos []ProductVideo `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"videos"`
}

type ProductImage struct {
	ID        int    `gorm:"primaryKey;column:id" json:"id"`
	ProductID int    `gorm:"column:product_id;index" json:"product_id"`
	URL       string `gorm:"column:url;size:512" json:"url"`
	AltText   string `gorm:"column:alt_text;size:255" json:"alt_text"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`
	IsPrimary bool   `gorm:"column:is_primary;default:false" json:"is_primary"`
}

type ProductVideo struct {
	ID        int    `gorm:"primaryKey;column:id" json:"id"`
	ProductID int    `gorm:"column:product_id;index" json:"product_id"`
	URL       string `gorm:"column:url;size:512" json:"url"`
	Title     string `gorm:"column:title;size:255" json:"title"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`
}

func (Product) TableName() string {
	return "products"
}

func (ProductImage) TableName() string {
	return "product_images"
}

func (ProductVideo) TableName() string {
	return "product_videos"
}

func ValidProductStatus(status string) bool {
	switch status {
	case ProductStatusActive, ProductStatusDraft, ProductStatusInactive:
		return true
	}
	return false
}
