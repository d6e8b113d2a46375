package main

import (
	"fmt"
	"log"

	"TripToVideo-server/config"
	"TripToVideo-server/models"
	"TripToVideo-server/routers"
	"TripToVideo-server/routers/api"
	"TripToVideo-server/service"

	"go.uber.org/zap"
)

func main() {
	config.InitConfig()
	fmt.Println("Server starting on port", config.AppConfig.Server.Port)
	models.InitDB()
	fmt.Println("Database initialized")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	// 三个外部能力客户端进程内只建一次，跨 worker 并发复用
	ai := service.NewOpenAIClient(config.AppConfig)
	storage, err := service.NewMinioStorage(config.AppConfig)
	if err != nil {
		log.Fatalf("MinIO 初始化失败: %v", err)
	}
	fmt.Println("MinIO initialized")

	transfer := service.NewTransfer(storage, logger)
	text := service.NewTextService(ai, logger)
	images := service.NewImageService(ai, transfer, logger)

	if config.AppConfig.Worker.Enabled {
		service.InitQueue()
		fmt.Println("Queue initialized")

		processor := service.NewProcessor(models.GormDB, images, logger)
		processor.StartProcessor(config.AppConfig.Worker.Concurrency)
	}

	h := &api.Handler{
		Text:            text,
		Images:          images,
		DB:              models.GormDB,
		SyncConcurrency: config.AppConfig.Images.MaxConcurrency,
		WorkerEnabled:   config.AppConfig.Worker.Enabled,
	}

	r := routers.InitRouter(h)
	r.Run(config.AppConfig.Server.Port)
}
