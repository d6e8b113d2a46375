package routers

import (
	"net/http"

	"TripToVideo-server/routers/api"

	"github.com/gin-gonic/gin"
)

func InitRouter(h *api.Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})

	recommend := r.Group("/recommend")
	{
		recommend.POST("/titles", h.RecommendTitles)
		recommend.POST("/iotros", h.RecommendIntroOutro)
	}

	fastapi := r.Group("/fastapi")
	{
		fastapi.POST("/storyboards", h.GenerateStoryboard)
		fastapi.GET("/storyboards/:storyboard_id", h.GetStoryboard)
		fastapi.POST("/images", h.GenerateImages)
		if h.WorkerEnabled {
			fastapi.POST("/images/async", h.GenerateImagesAsync)
		}
	}

	v1 := r.Group("/v1/api")
	{
		v1.GET("/tasks/:task_id", h.GetTaskStatus)
	}
	r.GET("/tasks/:task_id/wss", h.TaskProgressWebSocket)

	return r
}
