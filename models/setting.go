package models

import (
	"time"
)

type Setting struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	Key         string    `gorm:"column:key;uniqueIndex;size:100" json:"key"`
	Value       string    `gorm:"column:value;type:text" json:"value"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
