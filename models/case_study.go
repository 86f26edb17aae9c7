package models

import (
	"time"
)

const (
	CaseStatusActive   = "active"
	CaseStatusInactive = "inactive"
)

type CaseStudy struct {
	ID            int        `gorm:"primaryKey;column:id" json:"id"`
	TitleEn       string     `gorm:"column:title_en;size:255" json:"title_en"`
	TitleZh       string     `gorm:"column:title_zh;size:255" json:"title_zh"`
	DescriptionEn string     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionZh string     `gorm:"column:description_zh;type:text" json:"description_zh"`
	Category      string     `gorm:"column:category;size:100;index" json:"category"`
	Location      string     `gorm:"column:location;size:255" json:"location"`
	Client        string     `gorm:"column:client;size:255" json:"client"`
	ImageURL      string     `gorm:"column:image_url;size:512" json:"image_url"`
	ProjectDate   *time.Time `gorm:"column:project_date" json:"project_date,omitempty"`
	Status        string     `gorm:"column:status;size:20;default:active;index" json:"status"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

func ValidCaseStatus(status string) bool {
	return status == CaseStatusActive || status == CaseStatusInactive
}
