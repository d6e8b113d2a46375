package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"TripToVideo-server/config"

	"github.com/hibiken/asynq"
)

const (
	TypeSceneImage = "image:generate_scene"
)

type ImageTaskPayload struct {
	TaskID string `json:"task_id"`
}

var QueueClient *asynq.Client

// InitQueue 初始化
func InitQueue() {
	QueueClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.Redis.Addr,
		Password: config.AppConfig.Redis.Password,
	})
}

// EnqueueImageTask 图片生成任务入队
func EnqueueImageTask(taskID string) error {
	payload, err := json.Marshal(ImageTaskPayload{TaskID: taskID})
	if err != nil {
		return fmt.Errorf("marshal payload failed: %w", err)
	}

	task := asynq.NewTask(TypeSceneImage, payload,
		asynq.MaxRetry(0),                 // 生成失败不重试，结果以任务记录为准
		asynq.Timeout(10*time.Minute),     // 生图 + 搬运整体超时
		asynq.Retention(24*time.Hour),     // 任务结果在 Redis 保留时间
	)

	info, err := QueueClient.Enqueue(task)
	if err != nil {
		return fmt.Errorf("enqueue failed: %w", err)
	}

	log.Printf("[Queue] Task Enqueued: ID=%s, TaskID=%s", taskID, info.ID)
	return nil
}
