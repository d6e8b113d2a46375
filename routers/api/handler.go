package api

import (
	"TripToVideo-server/service"

	"gorm.io/gorm"
)

// Handler 持有各路由依赖的服务实例，在 main.go 中构造后传给路由
type Handler struct {
	Text            *service.TextService
	Images          *service.ImageService
	DB              *gorm.DB
	SyncConcurrency int  // 同步批量生图的最大并发
	WorkerEnabled   bool // 是否注册异步生图接口
}
