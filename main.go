// @title Qarsat Nahlah Store API
// @version 1.0
// @description Storefront backend for catalog, cart and WhatsApp checkout
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/qarsatnahlah/store-backend/config"
	"github.com/qarsatnahlah/store-backend/routes/storefront_routes"
	"github.com/qarsatnahlah/store-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.Load()
	// Redis connection (optional, used for carts and rate limiting)
	config.ConnectRedis()

	// Pick the cart backend: Redis when connected, otherwise files on disk
	if config.RedisClient != nil {
		services.InitCartBackend(services.NewRedisCartBackend(config.RedisClient, 30*24*time.Hour))
		log.Println("✅ Cart storage: Redis")
	} else if config.CartDataDir != "" {
		services.InitCartBackend(services.NewFileCartBackend(config.CartDataDir))
		log.Printf("✅ Cart storage: %s", config.CartDataDir)
	} else {
		log.Println("⚠️ Cart storage: in-memory only, carts reset on restart")
	}

	// Warm the catalog cache so the first request doesn't pay the fetch
	cat := services.GetCatalog()
	log.Printf("✅ Catalog loaded: %d products, %d categories", len(cat.Products), len(cat.Categories))

	corsCfg := cors.Config{
		AllowOrigins:     config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Cart-ID", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public storefront (checkout carries its own rate limiter)
	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	fmt.Println("🚀 Server is running on http://localhost:" + config.Port)
	router.Run(":" + config.Port)
}
