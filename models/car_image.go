package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarImage struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CarID        uuid.UUID `gorm:"type:uuid;not null;index" json:"car_id"`
	ImageURL     string    `gorm:"not null;size:500" json:"image_url"`
	IsPrimary    bool      `gorm:"default:false" json:"is_primary"`
	DisplayOrder int       `gorm:"default:0" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (i *CarImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
