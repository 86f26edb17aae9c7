package models

import (
	"time"
)

// Content types describe how the front-end renders a block.
const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeMixed = "mixed"
)

const (
	ContentStatusActive   = "active"
	ContentStatusInactive = "inactive"
)

// PageContent is one editable section of one public page (hero text,
// feature strip, banner image and so on). The (page_name, section_name)
// pair identifies a block; Parameters carries renderer-specific JSON.
type PageContent struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	PageName    string    `gorm:"column:page_name;size:100;uniqueIndex:uk_page_section" json:"page_name"`
	SectionName string    `gorm:"column:section_name;size:100;uniqueIndex:uk_page_section" json:"section_name"`
	ContentType string    `gorm:"column:content_type;size:20;default:text" json:"content_type"`
	TitleEn     string    `gorm:"column:title_en;size:255" json:"title_en"`
	TitleZh     string    `gorm:"column:title_zh;size:255" json:"title_zh"`
	SubtitleEn  string    `gorm:"column:subtitle_en;size:255" json:"subtitle_en"`
	SubtitleZh  string    `gorm:"column:subtitle_zh;size:255" json:"subtitle_zh"`
	BodyEn      string    `gorm:"column:body_en;type:text" json:"body_en"`
	BodyZh      string    `gorm:"column:body_zh;type:text" json:"body_zh"`
	ImageURL    string    `gorm:"column:image_url;size:512" json:"image_url"`
	VideoURL    string    `gorm:"column:video_url;size:512" json:"video_url"`
	LinkURL     string    `gorm:"column:link_url;size:512" json:"link_url"`
	Parameters  string    `gorm:"column:parameters;type:text" json:"parameters"`
	SortOrder   int       `gorm:"column:sort_order;default:0" json:"sort_order"`
	Status      string    `gorm:"column:status;size:20;default:active;index" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PageContent) TableName() string {
	return "page_contents"
}

func ValidContentType(t string) bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeMixed:
		return true
	}
	return false
}
