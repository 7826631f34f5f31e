package routes

import (
	"backend/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(entry *controllers.EntryController, analyze *controllers.AnalyzeController) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/analyze", analyze.AnalyzeImage)

	entries := r.Group("/entries")
	{
		entries.GET("", entry.ListToday)
		entries.GET("/all", entry.ListAll)
		entries.POST("", entry.CreateEntry)
		entries.DELETE("/delete", entry.DeleteToday)
	}

	return r
}
