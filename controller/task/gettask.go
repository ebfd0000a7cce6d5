package task

import (
	"net/http"

	"taskplanner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetTask(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	task, err := services.GetTaskData(db, c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}
