package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"realestate-api/constants"
	"realestate-api/dto"
	"realestate-api/infra"
	"realestate-api/middlewares"
	"realestate-api/models"
	"realestate-api/repositories"
	"realestate-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testAuthConfig = infra.AuthConfig{
	JWTSecret:        "test-jwt-secret",
	ProductKeySecret: "test-product-key-secret",
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Home{}, &models.Image{}))

	homeRepository := repositories.NewHomeRepository(db)
	homeService := services.NewHomeService(homeRepository)
	homeController := NewHomeController(homeService)

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, testAuthConfig)
	authController := NewAuthController(authService)

	r := gin.New()

	homeRouter := r.Group("/homes")
	homeRouterWithRealtorAuth := r.Group("/homes",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleRealtor, constants.RoleAdmin))
	authRouter := r.Group("/auth")
	authRouterWithAuth := r.Group("/auth", middlewares.AuthMiddleware(authService))

	homeRouter.GET("", homeController.FindAll)
	homeRouter.GET("/:id", homeController.FindById)
	homeRouter.GET("/:id/realtor", homeController.FindRealtorById)
	homeRouterWithRealtorAuth.POST("", homeController.Create)
	homeRouterWithRealtorAuth.PUT("/:id", homeController.Update)
	homeRouterWithRealtorAuth.DELETE("/:id", homeController.Delete)

	authRouter.POST("/signup/:userType", authController.Signup)
	authRouter.POST("/signin", authController.Signin)
	authRouter.POST("/key", authController.GenerateProductKey)
	authRouterWithAuth.GET("/me", authController.Me)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupBody(email, productKey string) gin.H {
	return gin.H{
		"name":       "Jamie Doe",
		"email":      email,
		"phone":      "555 123 4567",
		"password":   "password123",
		"productKey": productKey,
	}
}

func TestSignupBuyer(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup/buyer", signupBody("buyer@example.com", ""), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup/buyer", signupBody("dup@example.com", ""), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/signup/buyer", signupBody("dup@example.com", ""), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupUnknownRoleRejected(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup/landlord", signupBody("x@example.com", ""), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupRealtorRequiresProductKey(t *testing.T) {
	r := setupTestRouter(t)

	// No key at all.
	w := doJSON(t, r, http.MethodPost, "/auth/signup/realtor", signupBody("rae@example.com", ""), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A key minted for another email.
	w = doJSON(t, r, http.MethodPost, "/auth/key", gin.H{"email": "other@example.com", "userType": "realtor"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var wrongKey dto.ProductKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrongKey))

	w = doJSON(t, r, http.MethodPost, "/auth/signup/realtor", signupBody("rae@example.com", wrongKey.ProductKey), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The key minted for this exact email and role.
	w = doJSON(t, r, http.MethodPost, "/auth/key", gin.H{"email": "rae@example.com", "userType": "realtor"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var key dto.ProductKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &key))

	w = doJSON(t, r, http.MethodPost, "/auth/signup/realtor", signupBody("rae@example.com", key.ProductKey), "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSigninFailureIs400(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup/buyer", signupBody("jamie@example.com", ""), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{"email": "jamie@example.com", "password": "password123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong password and unknown account return the same status.
	w = doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{"email": "jamie@example.com", "password": "wrongpassword"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{"email": "nobody@example.com", "password": "password123"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup/buyer", signupBody("jamie@example.com", ""), "")
	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, resp.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Jamie Doe", me.Name)
	assert.Equal(t, "jamie@example.com", me.Email)

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
