package controllers

import (
	"errors"
	"log"
	"net/http"

	"realestate-api/constants"
	"realestate-api/dto"
	"realestate-api/models"
	"realestate-api/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Signin(ctx *gin.Context)
	GenerateProductKey(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	userType := ctx.Param("userType")
	if !constants.ValidRole(userType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRole})
		return
	}

	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Privileged roles must present a product key minted for this exact
	// email and role. Missing or mismatched keys fail closed.
	if userType != constants.RoleBuyer {
		if input.ProductKey == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if err := c.service.VerifyProductKey(input.Email, userType, input.ProductKey); err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}

	token, err := c.service.SignUp(input, userType)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrEmailExists})
			return
		}
		log.Printf("Signup error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.TokenResponse{Token: *token})
}

func (c *AuthController) Signin(ctx *gin.Context) {
	var input dto.SigninInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.SignIn(input.Email, input.Password)
	if err != nil {
		// 400 for both unknown email and wrong password; the status code
		// must not reveal which one it was.
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrBadCredentials})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: *token})
}

func (c *AuthController) GenerateProductKey(ctx *gin.Context) {
	var input dto.GenerateKeyInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !constants.ValidRole(input.UserType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRole})
		return
	}

	key, err := c.service.GenerateProductKey(input.Email, input.UserType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductKeyResponse{ProductKey: key})
}

func (c *AuthController) Me(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userModel := user.(*models.User)
	ctx.JSON(http.StatusOK, dto.UserResponse{
		ID:    userModel.ID,
		Name:  userModel.Name,
		Email: userModel.Email,
		Phone: userModel.Phone,
	})
}
