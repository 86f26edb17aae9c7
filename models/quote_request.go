package models

import (
	"time"
)

const (
	QuoteStatusPending  = "pending"
	QuoteStatusQuoted   = "quoted"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusClosed   = "closed"
)

type QuoteRequest struct {
	ID           int        `gorm:"primaryKey;column:id" json:"id"`
	Name         string     `gorm:"column:name;size:100" json:"name"`
	Email        string     `gorm:"column:email;size:255" json:"email"`
	Company      string     `gorm:"column:company;size:255" json:"company"`
	Phone        string     `gorm:"column:phone;size:50" json:"phone"`
	ProductType  string     `gorm:"column:product_type;size:255" json:"product_type"`
	DisplaySize  string     `gorm:"column:display_size;size:100" json:"display_size"`
	Quantity     int        `gorm:"column:quantity;default:1" json:"quantity"`
	Requirements string     `gorm:"column:requirements;type:text" json:"requirements"`
	Timeline     string     `gorm:"column:timeline;size:100" json:"timeline"`
	Budget       string     `gorm:"column:budget;size:100" json:"budget"`
	Status       string     `gorm:"column:status;size:20;default:pending;index" json:"status"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	HandledBy    string     `gorm:"column:handled_by;size:64" json:"handled_by"`
	HandledAt    *time.Time `gorm:"column:handled_at" json:"handled_at,omitempty"`
}

func (QuoteRequest) TableName() string {
	return "quote_requests"
}

func ValidQuoteStatus(status string) bool {
	switch status {
	case QuoteStatusPending, QuoteStatusQuoted, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusClosed:
		return true
	}
	return false
}
