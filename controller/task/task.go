package task

import (
	"taskplanner/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			AllTasks(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, db)
		})
		routes.PATCH("/:id/status", func(c *gin.Context) {
			UpdateTaskStatus(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, db)
		})
	}
}
