package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// 任务状态（在系统中统一使用这些状态）
const (
	// pending: 任务已就绪，等待执行器取走执行
	TaskStatusPending = "pending"
	// processing: 任务正在执行中
	TaskStatusProcessing = "processing"
	TaskStatusSuccess    = "finished"
	TaskStatusFailed     = "failed"

	// 后台图片生成任务类型
	TaskTypeSceneImage = "generate_scene_image"
)

// ImageTask 后台图片生成任务记录（异步部署模式下由 worker 消费）
type ImageTask struct {
	ID           string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	StoryboardId string          `gorm:"index;type:varchar(64)" json:"storyboardId"`
	OrderNum     int             `json:"orderNum"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	Message      string          `json:"message"`
	Parameters   ImageTaskParams `gorm:"type:json" json:"parameters"`
	ResultUrl    string          `json:"resultUrl"`
	Error        string          `json:"error"`
	StartedAt    time.Time       `json:"startedAt"`
	FinishedAt   time.Time       `json:"finishedAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type ImageTaskParams struct {
	Request ImageGenerationRequest `json:"request"`
}

// 实现 driver.Valuer 接口: Go Struct -> JSON String (存入数据库)
func (p ImageTaskParams) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// 实现 sql.Scanner 接口: JSON String -> Go Struct (从数据库读取)
func (p *ImageTaskParams) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, p)
}

func CreateImageTask(db *gorm.DB, t *ImageTask) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return db.Create(t).Error
}

func GetImageTaskByID(db *gorm.DB, taskID string) (*ImageTask, error) {
	var task ImageTask
	if err := db.First(&task, "id = ?", taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus 更新任务状态及结果（resultUrl / errMsg 允许为空）
func (t *ImageTask) UpdateStatus(db *gorm.DB, status, resultUrl, errMsg string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	switch status {
	case TaskStatusProcessing:
		updates["started_at"] = time.Now()
		updates["progress"] = 10
	case TaskStatusSuccess:
		updates["finished_at"] = time.Now()
		updates["progress"] = 100
	case TaskStatusFailed:
		updates["finished_at"] = time.Now()
	}
	if resultUrl != "" {
		updates["result_url"] = resultUrl
	}
	if errMsg != "" {
		updates["error"] = errMsg
	}
	return db.Model(t).Updates(updates).Error
}

// 强制指定表名为 "image_task"
func (ImageTask) TableName() string {
	return "image_task"
}
