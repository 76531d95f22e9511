package models

import (
	"time"

	"gorm.io/gorm"
)

type Home struct {
	gorm.Model
	Address      string    `gorm:"not null"`
	City         string    `gorm:"not null;index"`
	Bedrooms     uint      `gorm:"not null"`
	Bathrooms    uint      `gorm:"not null"`
	LandSize     float64   `gorm:"not null"`
	Price        float64   `gorm:"not null"`
	PropertyType string    `gorm:"not null"`
	ListDate     time.Time `gorm:"not null"`
	RealtorID    uint      `gorm:"not null"`
	Images       []Image
}
