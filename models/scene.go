package models

import "time"

// Scene 单个分镜场景，由解析器从 LLM 应答中提取
// OrderNum 由模型输出决定，不保证从 1 开始或连续
type Scene struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)" json:"-"`
	StoryboardId   string    `gorm:"index;type:varchar(64)" json:"-"`
	Seq            int       `json:"-"` // 在应答文本中出现的顺序，持久化后按此排序
	OrderNum       int       `json:"order_num"`
	SceneTitle     string    `json:"scene_title"`
	Description    string    `json:"description"`
	CameraAngle    string    `json:"camera_angle"`
	CameraMovement string    `json:"camera_movement"`
	Composition    string    `json:"composition"`
	CreatedAt      time.Time `json:"-"`
}

func (Scene) TableName() string {
	return "scene"
}
