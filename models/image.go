package models

import "gorm.io/gorm"

// Image has no lifecycle of its own: rows are bulk-created with a Home
// and bulk-deleted when the Home is deleted.
type Image struct {
	gorm.Model
	URL    string `gorm:"not null"`
	HomeID uint   `gorm:"not null;index"`
}
