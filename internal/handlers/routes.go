package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"registration-api/internal/middleware"
	"registration-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	RegistrationService services.RegistrationService
	OrderService        services.RecordService
	UserService         services.RecordService
	AuthService         *middleware.AuthService
	Logger              *logrus.Logger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	signUpHandler := NewSignUpHandler(config.RegistrationService)
	orderHandler := NewOrderHandler(config.OrderService)
	userHandler := NewUserHandler(config.UserService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "registration-api",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/signup", signUpHandler.SignUp)

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:email", orderHandler.GetOrder)
		}

		// The users listing exposes every registered account, so the dev
		// server keeps it behind bearer auth.
		users := v1.Group("/users")
		users.Use(middleware.Authentication(config.AuthService))
		{
			users.GET("", userHandler.ListUsers)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *RouterConfig, rps float64, burst int) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimiter(rps, burst))
	router.Use(middleware.StructuredLogger(config.Logger))
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, config *RouterConfig) {
	dev := router.Group("/dev")
	{
		// Generate demo token for testing the protected routes
		dev.POST("/token", func(c *gin.Context) {
			token, err := config.AuthService.GenerateToken("demo", "demo@example.com")
			if err != nil {
				c.JSON(500, gin.H{"message": err.Error()})
				return
			}
			c.JSON(200, gin.H{"token": token})
		})
	}
}
