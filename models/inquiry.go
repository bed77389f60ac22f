package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry is a customer message from the contact form or from checkout.
// Checkout inquiries are the only record of a purchase.
type Inquiry struct {
	ID              uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CarID           *uuid.UUID    `gorm:"type:uuid;index" json:"car_id,omitempty"`
	FullName        string        `gorm:"not null;size:100" json:"full_name"`
	Email           string        `gorm:"not null;size:120" json:"email"`
	Phone           string        `gorm:"size:20" json:"phone"`
	VehicleInterest string        `json:"vehicle_interest"`
	Message         string        `gorm:"type:text;not null" json:"message"`
	Status          InquiryStatus `gorm:"size:20;default:new" json:"status"`
	CreatedAt       time.Time     `gorm:"index" json:"created_at"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = InquiryStatusNew
	}
	return nil
}
