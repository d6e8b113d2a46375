package api

import (
	"net/http"

	"TripToVideo-server/models"

	"github.com/gin-gonic/gin"
)

// 分镜脚本生成：POST /fastapi/storyboards
// 解析失败时整个请求失败，不返回部分场景
func (h *Handler) GenerateStoryboard(c *gin.Context) {
	var req struct {
		Destination    string   `json:"destination"`
		Purpose        string   `json:"purpose"`
		Companions     string   `json:"companions"`
		CompanionCount int      `json:"companion_count"`
		Season         string   `json:"season"`
		Title          string   `json:"title"`
		Intro          string   `json:"intro"`
		Outro          string   `json:"outro"`
		Description    string   `json:"description"`
		ImageUrls      []string `json:"image_urls"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc := models.TripContext{
		Destination:    req.Destination,
		Description:    req.Description,
		Purpose:        req.Purpose,
		Companions:     req.Companions,
		CompanionCount: req.CompanionCount,
		Season:         req.Season,
	}

	scenes, err := h.Text.GenerateStoryboard(c.Request.Context(), tc, req.Title, req.Intro, req.Outro, req.ImageUrls)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "分镜生成失败: " + err.Error()})
		return
	}

	// 持久化，storyboard_id 供后续图片生成请求寻址存储 key
	sb := models.Storyboard{
		Title:       req.Title,
		Intro:       req.Intro,
		Outro:       req.Outro,
		Destination: req.Destination,
		Purpose:     req.Purpose,
		Season:      req.Season,
	}
	if err := models.CreateStoryboardWithScenes(h.DB, &sb, scenes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存分镜失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"storyboard_id":     sb.ID,
		"storyboard_scenes": scenes,
	})
}

// 分镜脚本查询：GET /fastapi/storyboards/:storyboard_id
func (h *Handler) GetStoryboard(c *gin.Context) {
	storyboardID := c.Param("storyboard_id")

	sb, err := models.GetStoryboardByID(h.DB, storyboardID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "分镜未找到: " + err.Error()})
		return
	}
	scenes, err := models.GetScenesByStoryboardID(h.DB, storyboardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询场景失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"storyboard":        sb,
		"storyboard_scenes": scenes,
	})
}
