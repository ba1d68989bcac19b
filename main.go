package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eco-connect/api-go/config"
	"github.com/eco-connect/api-go/middleware"
	"github.com/eco-connect/api-go/routes"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	// Initialize database
	db := config.InitDB()

	// Redis backs the activity view counters; optional
	rdb := config.InitRedis(context.Background(), logger)

	// Create a new Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Initialize routes
	routes.SetupRoutes(r, db, rdb, logger)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := cfg.Build()
	return logger
}
