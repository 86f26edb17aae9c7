package models

import (
	"time"
)

const (
	FileTypeImage    = "image"
	FileTypeVideo    = "video"
	FileTypeDocument = "document"
)

// MediaFile is the registry row for an uploaded asset. FilePath is the
// admin-side copy, PublicPath the mirrored copy the front-end references.
type MediaFile struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	Filename     string    `gorm:"column:filename;size:255" json:"filename"`
	OriginalName string    `gorm:"column:original_name;size:255" json:"original_name"`
	Category     string    `gorm:"column:category;size:100;index" json:"category"`
	FileType     string    `gorm:"column:file_type;size:20;index" json:"file_type"`
	FileSize     int64     `gorm:"column:file_size" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type;size:100" json:"mime_type"`
	FilePath     string    `gorm:"column:file_path;size:512" json:"file_path"`
	PublicPath   string    `gorm:"column:public_path;size:512" json:"public_path"`
	UploadedBy   string    `gorm:"column:uploaded_by;size:64" json:"uploaded_by"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MediaFile) TableName() string {
	return "media_files"
}
