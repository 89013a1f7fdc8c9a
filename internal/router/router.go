// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/soleshelf/inventory-backend/internal/config"
	"github.com/soleshelf/inventory-backend/internal/handlers"
	"github.com/soleshelf/inventory-backend/internal/middleware"
	"github.com/soleshelf/inventory-backend/internal/repository"
	"github.com/soleshelf/inventory-backend/internal/services"
)

func Initialize(repo repository.ShoeRepository, cfg *config.Config, log *logrus.Logger) (*gin.Engine, error) {
	// Initialize services
	shoeService := services.NewShoeService(repo, log)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	shoeHandler := handlers.NewShoeHandler(shoeService, storageService)
	variationHandler := handlers.NewVariationHandler(shoeService)

	// Rate limiters
	generalLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 10)
	uploadLimiter := middleware.NewRateLimiter(rate.Every(time.Minute), 10)

	authRequired := middleware.AuthRequired(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		shoes := v1.Group("/shoes")
		{
			shoes.GET("", middleware.OptionalAuth(cfg.JWT.SecretKey), shoeHandler.GetShoes)
			shoes.GET("/:id", middleware.OptionalAuth(cfg.JWT.SecretKey), shoeHandler.GetShoe)
			shoes.GET("/:id/colors", shoeHandler.GetAvailableColors)
			shoes.GET("/:id/variations", variationHandler.GetVariations)

			// Authenticated routes
			protected := shoes.Group("")
			protected.Use(authRequired)
			{
				protected.POST("", shoeHandler.CreateShoe)
				protected.PUT("/:id", shoeHandler.UpdateShoe)
				protected.DELETE("/:id", shoeHandler.DeleteShoe)
				protected.POST("/:id/color", shoeHandler.ChangeColor)
				protected.POST("/:id/variations", variationHandler.CreateVariation)
				protected.POST("/upload-image", uploadLimiter.Middleware(), shoeHandler.UploadImage)
			}
		}

		variations := v1.Group("/variations")
		{
			variations.GET("/:id", variationHandler.GetVariation)

			protected := variations.Group("")
			protected.Use(authRequired)
			{
				protected.PUT("/:id", variationHandler.UpdateVariation)
				protected.DELETE("/:id", variationHandler.DeleteVariation)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r, nil
}
