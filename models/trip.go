package models

// TripContext 一次请求的旅行参数，只读，不会被修改
type TripContext struct {
	Destination    string `json:"destination"`     // 여행지
	Description    string `json:"description"`     // 여행지 설명
	Purpose        string `json:"purpose"`         // 여행 목적
	Companions     string `json:"companions"`      // 동행인
	CompanionCount int    `json:"companion_count"` // 동행인 수
	Season         string `json:"season"`          // 계절
}

// ImageGenerationRequest 单个分镜的图片生成请求（由调用方提供，每个分镜一条）
type ImageGenerationRequest struct {
	StoryboardId     string   `json:"storyboard_id"`
	OrderNum         int      `json:"order_num"`
	SceneDescription string   `json:"scene_description"`
	Destination      string   `json:"destination"`
	Purpose          string   `json:"purpose"`
	Companion        string   `json:"companion"`
	CompanionCount   int      `json:"companion_count"`
	Season           string   `json:"season"`
	ImageUrls        []string `json:"image_urls"` // 参考图片 URL 列表
}
