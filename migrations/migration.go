package main

import (
	"realestate-api/infra"
	"realestate-api/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Home{}, &models.Image{}); err != nil {
		panic("Failed to migrate database")
	}
}
