package api

import (
	"net/http"
	"time"

	"TripToVideo-server/models"
	"TripToVideo-server/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 同步批量生图：POST /fastapi/images
// 阻塞到所有条目完成，返回成功条目的图片 URL；失败条目只记日志
func (h *Handler) GenerateImages(c *gin.Context) {
	var reqs []models.ImageGenerationRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request list"})
		return
	}

	results := h.Images.GenerateImages(c.Request.Context(), reqs, h.SyncConcurrency)
	c.JSON(http.StatusOK, service.SuccessfulURLs(results))
}

// 异步批量生图：POST /fastapi/images/async
// 为每条请求建任务记录并入队，立即返回 task_id 列表；结果通过任务接口查询
func (h *Handler) GenerateImagesAsync(c *gin.Context) {
	var reqs []models.ImageGenerationRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request list"})
		return
	}

	taskIDs := make([]string, 0, len(reqs))
	for _, req := range reqs {
		task := models.ImageTask{
			ID:           uuid.NewString(),
			StoryboardId: req.StoryboardId,
			OrderNum:     req.OrderNum,
			Type:         models.TaskTypeSceneImage,
			Status:       models.TaskStatusPending,
			Progress:     0,
			Message:      "图片生成任务已创建",
			Parameters: models.ImageTaskParams{
				Request: req,
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := models.CreateImageTask(h.DB, &task); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "创建任务失败: " + err.Error()})
			return
		}
		if err := service.EnqueueImageTask(task.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "任务入队失败"})
			return
		}
		taskIDs = append(taskIDs, task.ID)
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "图片生成任务已创建",
		"task_ids": taskIDs,
	})
}
