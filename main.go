package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/logger"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Init(cfg.Env)
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		logger.L().Fatal("seed admin failed", zap.Error(err))
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
