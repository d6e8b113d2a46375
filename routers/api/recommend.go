package api

import (
	"net/http"

	"TripToVideo-server/models"

	"github.com/gin-gonic/gin"
)

// 标题推荐：POST /recommend/titles
func (h *Handler) RecommendTitles(c *gin.Context) {
	var req models.TripContext
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	titles, err := h.Text.GenerateTitles(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "标题生成失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, titles)
}

// 인트로/아웃트로推荐：POST /recommend/iotros
func (h *Handler) RecommendIntroOutro(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intros, outros, err := h.Text.GenerateIntroOutro(c.Request.Context(), req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "인트로/아웃트로生成失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intros": intros,
		"outros": outros,
	})
}
