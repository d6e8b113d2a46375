package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"TripToVideo-server/config"
	"TripToVideo-server/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Processor 消费后台图片生成任务（异步部署模式）。
// 单条任务的失败只写回任务记录和日志，不影响其它任务
type Processor struct {
	DB     *gorm.DB
	Images *ImageService
	logger *zap.Logger
}

func NewProcessor(db *gorm.DB, images *ImageService, logger *zap.Logger) *Processor {
	return &Processor{DB: db, Images: images, logger: logger}
}

// StartProcessor 启动任务消费者
func (p *Processor) StartProcessor(concurrency int) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.Redis.Addr,
			Password: config.AppConfig.Redis.Password,
		},
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSceneImage, p.HandleSceneImageTask)

	log.Printf("Starting Task Processor with concurrency %d...", concurrency)
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("could not run server: %v", err)
		}
	}()
}

// HandleSceneImageTask 核心处理逻辑：取任务记录 -> 执行流水线 -> 写回结果
func (p *Processor) HandleSceneImageTask(ctx context.Context, t *asynq.Task) error {
	var payload ImageTaskPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	task, err := models.GetImageTaskByID(p.DB, payload.TaskID)
	if err != nil {
		return fmt.Errorf("task not found: %v", err)
	}

	p.logger.Info("开始处理图片任务",
		zap.String("task_id", task.ID),
		zap.String("storyboard_id", task.StoryboardId),
		zap.Int("order_num", task.OrderNum))

	if err := task.UpdateStatus(p.DB, models.TaskStatusProcessing, "", ""); err != nil {
		p.logger.Warn("任务状态更新失败", zap.String("task_id", task.ID), zap.Error(err))
	}

	imageURL, err := p.Images.GenerateSceneImage(ctx, task.Parameters.Request)
	if err != nil {
		// 业务失败写回记录，不触发队列重试
		p.logger.Error("图片任务失败", zap.String("task_id", task.ID), zap.Error(err))
		if uerr := task.UpdateStatus(p.DB, models.TaskStatusFailed, "", err.Error()); uerr != nil {
			p.logger.Warn("任务失败状态写回失败", zap.String("task_id", task.ID), zap.Error(uerr))
		}
		return nil
	}

	if err := task.UpdateStatus(p.DB, models.TaskStatusSuccess, imageURL, ""); err != nil {
		p.logger.Warn("任务成功状态写回失败", zap.String("task_id", task.ID), zap.Error(err))
	}
	p.logger.Info("图片任务完成", zap.String("task_id", task.ID), zap.String("url", imageURL))
	return nil
}
