package dto

import "time"

type ImageInput struct {
	URL string `json:"url" binding:"required"`
}

type CreateHomeInput struct {
	Address      string       `json:"address" binding:"required"`
	City         string       `json:"city" binding:"required"`
	Bedrooms     uint         `json:"numberOfBedrooms" binding:"required"`
	Bathrooms    uint         `json:"numberOfBathrooms" binding:"required"`
	LandSize     float64      `json:"landSize" binding:"required"`
	Price        float64      `json:"price" binding:"required"`
	PropertyType string       `json:"propertyType" binding:"required"`
	Images       []ImageInput `json:"images" binding:"required,min=1,dive"`
}

type UpdateHomeInput struct {
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	Bedrooms     *uint    `json:"numberOfBedrooms"`
	Bathrooms    *uint    `json:"numberOfBathrooms"`
	LandSize     *float64 `json:"landSize"`
	Price        *float64 `json:"price"`
	PropertyType *string  `json:"propertyType"`
}

// HomeFilter is passed through to the store; nil fields place no constraint.
type HomeFilter struct {
	City         *string  `form:"city"`
	PropertyType *string  `form:"propertyType"`
	MinPrice     *float64 `form:"minPrice"`
	MaxPrice     *float64 `form:"maxPrice"`
}

// HomeSummary is the bulk-list projection: full listing fields plus the
// first image URL in insertion order.
type HomeSummary struct {
	ID           uint      `json:"id"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Bedrooms     uint      `json:"numberOfBedrooms"`
	Bathrooms    uint      `json:"numberOfBathrooms"`
	LandSize     float64   `json:"landSize"`
	Price        float64   `json:"price"`
	PropertyType string    `json:"propertyType"`
	ListDate     time.Time `json:"listDate"`
	Image        string    `json:"image"`
}
