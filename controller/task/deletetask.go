package task

import (
	"net/http"

	"taskplanner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTask(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	task, err := services.GetTaskData(db, c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := db.Delete(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
