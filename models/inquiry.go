package models

import (
	"time"
)

// Inquiry workflow statuses. A new inquiry always starts at "new"; operators
// move it through the rest from the admin screen.
const (
	InquiryStatusNew        = "new"
	InquiryStatusProcessing = "processing"
	InquiryStatusResolved   = "resolved"
	InquiryStatusClosed     = "closed"
)

type Inquiry struct {
	ID              int        `gorm:"primaryKey;column:id" json:"id"`
	Name            string     `gorm:"column:name;size:100" json:"name"`
	Email           string     `gorm:"column:email;size:255" json:"email"`
	Company         string     `gorm:"column:company;size:255" json:"company"`
	Phone           string     `gorm:"column:phone;size:50" json:"phone"`
	ProductInterest string     `gorm:"column:product_interest;size:255" json:"product_interest"`
	Message         string     `gorm:"column:message;type:text" json:"message"`
	Status          string     `gorm:"column:status;size:20;default:new;index" json:"status"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	HandledBy       string     `gorm:"column:handled_by;size:64" json:"handled_by"`
	HandledAt       *time.Time `gorm:"column:handled_at" json:"handled_at,omitempty"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusProcessing, InquiryStatusResolved, InquiryStatusClosed:
		return true
	}
	return false
}
