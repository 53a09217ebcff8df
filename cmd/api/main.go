package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/ManosLatam/marketplace-api/internal/config"
	dbpkg "github.com/ManosLatam/marketplace-api/internal/db"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/lock"
	"github.com/ManosLatam/marketplace-api/internal/logger"
	"github.com/ManosLatam/marketplace-api/internal/middleware"
	"github.com/ManosLatam/marketplace-api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.InitLoggers()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	locks := lock.New(rdb)

	collector, err := gateway.NewMercadoPago(cfg.MPAccessToken)
	if err != nil {
		log.Fatalf("failed to init payment collector: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, collector, locks)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
