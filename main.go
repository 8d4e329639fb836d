package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"masterdataapi/bootstrap"
	"masterdataapi/config"
	"masterdataapi/controllers"
	_ "masterdataapi/docs"
	"masterdataapi/pkg/logger"
	"masterdataapi/pkg/principal"
	"masterdataapi/repository"
	"masterdataapi/schema"
	"masterdataapi/services"
	"masterdataapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           masterdataapi
// @version         1.0
// @description     Generic master data wrapper API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting master data API with log level: %s", config.Cfg.LogLevel)

	// 3) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}

	// 4) Build the whitelist and verify every table is reachable
	registry := schema.DefaultRegistry()
	if err := bootstrap.LoadData(registry); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	store := repository.NewRecordStore(nil)
	audit := services.NewAuditSink(repository.NewAuditRepository(nil))
	controllers.SetWrapperService(services.NewWrapperService(registry, store, audit))

	resolver := principal.NewJWTResolver(config.Cfg.JWTSecret)

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	api := router.Group("/api")
	{
		master := api.Group("/master")
		{
			controllers.RegisterHealthRoutes(master)

			protected := master.Group("", utils.AuthMiddleware(resolver))
			controllers.RegisterWrapperRoutes(protected)
		}
	}

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, stopping")
		os.Exit(0)
	}()

	// 8) Run
	logger.Infof("Starting server at port %s", config.Cfg.ListenPort)
	router.Run("0.0.0.0:" + config.Cfg.ListenPort)
}
