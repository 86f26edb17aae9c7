package models

import (
	"time"
)

const (
	NewsStatusPublished = "published"
	NewsStatusDraft     = "draft"
)

type News struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	TitleEn   string    `gorm:"column:title_en;size:255" json:"title_en"`
	TitleZh   string    `gorm:"column:title_zh;size:255" json:"title_zh"`
	ContentEn string    `gorm:"column:content_en;type:text" json:"content_en"`
	ContentZh string    `gorm:"column:content_zh;type:text" json:"content_zh"`
	Category  string    `gorm:"column:category;size:100;index" json:"category"`
	ImageURL  string    `gorm:"column:image_url;size:512" json:"image_url"`
	Author    string    `gorm:"column:author;size:100" json:"author"`
	Status    string    `gorm:"column:status;size:20;default:draft;index" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}

func ValidNewsStatus(status string) bool {
	return status == NewsStatusPublished || status == NewsStatusDraft
}
