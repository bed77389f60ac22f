package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_car" json:"user_id"`
	CarID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_car;index" json:"car_id"`
	Car       Car       `gorm:"foreignKey:CarID" json:"car"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
