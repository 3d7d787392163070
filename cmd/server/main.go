package main

import (
	"github.com/gin-gonic/gin"
	"github.com/publicart/internal/config"
	"github.com/publicart/internal/db"
	"github.com/publicart/internal/handler"
	"github.com/publicart/internal/logger"
	"github.com/publicart/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	gin.SetMode(cfg.GinMode)

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(db.DB, log, cfg.Debug, cfg.UploadDir, cfg.UploadURLPath)
	r := router.SetupRouter(api, cfg.UploadURLPath, cfg.UploadDir)

	log.Info().Str("addr", cfg.ListenAddr).Bool("debug", cfg.Debug).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
