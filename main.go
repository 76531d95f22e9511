package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realestate-api/constants"
	"realestate-api/controllers"
	"realestate-api/infra"
	"realestate-api/middlewares"
	"realestate-api/models"
	"realestate-api/repositories"
	"realestate-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, authConfig infra.AuthConfig) *gin.Engine {
	homeRepository := repositories.NewHomeRepository(db)
	homeService := services.NewHomeService(homeRepository)
	homeController := controllers.NewHomeController(homeService)

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, authConfig)
	authController := controllers.NewAuthController(authService)

	r := gin.Default()
	r.Use(cors.Default())

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

func main() {
	infra.Initialize()
	db := infra.SetupDB()
	authConfig := infra.LoadAuthConfig()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Home{}, &models.Image{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	r := setupRouter(db, authConfig)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
