package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Storyboard 一次生成得到的完整分镜脚本
type Storyboard struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string    `json:"title"`
	Intro       string    `json:"intro"`
	Outro       string    `json:"outro"`
	Destination string    `json:"destination"`
	Purpose     string    `json:"purpose"`
	Season      string    `json:"season"`
	SceneCount  int       `json:"sceneCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Storyboard) TableName() string {
	return "storyboard"
}

// CreateStoryboardWithScenes 持久化分镜脚本与全部场景，返回生成的 storyboard_id
// 场景按传入顺序写入 Seq（与模型输出顺序一致）
func CreateStoryboardWithScenes(db *gorm.DB, sb *Storyboard, scenes []Scene) error {
	if sb.ID == "" {
		sb.ID = uuid.NewString()
	}
	now := time.Now()
	sb.CreatedAt = now
	sb.UpdatedAt = now
	sb.SceneCount = len(scenes)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sb).Error; err != nil {
			return err
		}
		for i := range scenes {
			scenes[i].ID = uuid.NewString()
			scenes[i].StoryboardId = sb.ID
			scenes[i].Seq = i
			scenes[i].CreatedAt = now
		}
		if len(scenes) == 0 {
			return nil
		}
		return tx.Create(&scenes).Error
	})
}

func GetStoryboardByID(db *gorm.DB, id string) (*Storyboard, error) {
	var sb Storyboard
	if err := db.First(&sb, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sb, nil
}

func GetScenesByStoryboardID(db *gorm.DB, storyboardID string) ([]Scene, error) {
	var scenes []Scene
	if err := db.Where("storyboard_id = ?", storyboardID).Order("seq ASC").Find(&scenes).Error; err != nil {
		return nil, err
	}
	return scenes, nil
}
