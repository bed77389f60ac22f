package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusSold      CarStatus = "sold"
	CarStatusReserved  CarStatus = "reserved"
)

// IsValidCarStatus reports whether s is one of the known inventory states.
func IsValidCarStatus(s CarStatus) bool {
	switch s {
	case CarStatusAvailable, CarStatusSold, CarStatusReserved:
		return true
	}
	return false
}

type Car struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string     `gorm:"not null;size:100" json:"name"`
	Brand         string     `gorm:"not null;size:50;index" json:"brand"`
	Model         string     `gorm:"not null;size:50" json:"model"`
	Year          int        `json:"year"`
	Price         float64    `gorm:"type:decimal(12,2);not null" json:"price"`
	Horsepower    *int       `json:"horsepower"`
	Description   string     `gorm:"type:text" json:"description"`
	ImageURL      string     `gorm:"size:500" json:"image_url"` // Main image, copied from a CarImage on set-primary
	Status        CarStatus  `gorm:"size:20;default:available;index" json:"status"`
	Engine        string     `gorm:"size:100" json:"engine"`
	Transmission  string     `gorm:"size:50;default:Automatic" json:"transmission"`
	FuelType      string     `gorm:"size:30;default:Petrol" json:"fuel_type"`
	Mileage       int        `gorm:"default:0" json:"mileage"` // km
	ExteriorColor string     `gorm:"size:50" json:"exterior_color"`
	InteriorColor string     `gorm:"size:50" json:"interior_color"`
	TopSpeed      *int       `json:"top_speed"`    // km/h
	Acceleration  *float64   `json:"acceleration"` // 0-100 km/h, seconds
	Features      string     `gorm:"type:text" json:"features"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Images        []CarImage `gorm:"foreignKey:CarID" json:"images,omitempty"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Car) IsAvailable() bool {
	return c.Status == CarStatusAvailable
}

// FeaturesList splits the comma-separated feature string, dropping blanks.
func (c *Car) FeaturesList() []string {
	features := []string{}
	for _, f := range strings.Split(c.Features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}
