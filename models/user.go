package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"not null;unique"`
	Phone    string `gorm:"not null"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'buyer'"`
	Homes    []Home `gorm:"foreignKey:RealtorID"`
}
