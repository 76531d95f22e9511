package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"realestate-api/constants"
	"realestate-api/dto"
	"realestate-api/models"
	"realestate-api/services"

	"github.com/gin-gonic/gin"
)

type IHomeController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	FindRealtorById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type HomeController struct {
	service services.IHomeService
}

func NewHomeController(service services.IHomeService) IHomeController {
	return &HomeController{service: service}
}

func (c *HomeController) FindAll(ctx *gin.Context) {
	var filter dto.HomeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	homes, err := c.service.GetHomes(filter)
	if err != nil {
		if errors.Is(err, services.ErrHomeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrHomeNotFound})
			return
		}
		log.Printf("Find homes error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": homes})
}

func (c *HomeController) FindById(ctx *gin.Context) {
	homeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	home, err := c.service.GetHome(uint(homeID))
	if err != nil {
		if errors.Is(err, services.ErrHomeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrHomeNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": home})
}

func (c *HomeController) FindRealtorById(ctx *gin.Context) {
	homeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	realtor, err := c.service.GetRealtorByHomeId(uint(homeID))
	if err != nil {
		if errors.Is(err, services.ErrHomeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrHomeNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": realtor})
}

func (c *HomeController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	realtorID := user.(*models.User).ID

	var input dto.CreateHomeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newHome, err := c.service.CreateHome(input, realtorID)
	if err != nil {
		log.Printf("Create home error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newHome})
}

func (c *HomeController) Update(ctx *gin.Context) {
	homeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateHomeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedHome, err := c.service.UpdateHome(uint(homeID), input)
	if err != nil {
		if errors.Is(err, services.ErrHomeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrHomeNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": updatedHome})
}

func (c *HomeController) Delete(ctx *gin.Context) {
	homeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	deletedHome, err := c.service.DeleteHome(uint(homeID))
	if err != nil {
		if errors.Is(err, services.ErrHomeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrHomeNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": deletedHome})
}
