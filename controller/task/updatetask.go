package task

import (
	"net/http"

	"taskplanner/dto"
	"taskplanner/model"
	"taskplanner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateTask(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	task, err := services.GetTaskData(db, c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task.Title = request.Title
	task.Description = request.Description
	task.DueDate = request.DueDate
	task.ReminderDate = request.ReminderDate
	if request.Priority != "" {
		task.Priority = request.Priority
	}
	task.Category = request.Category
	task.Status = request.Status
	// completed must always track the status field
	task.Completed = request.Status == model.StatusCompleted

	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}

// UpdateTaskStatus handles the quick status toggle. Marking a task completed
// here is what later makes it a candidate for a completion notification.
func UpdateTaskStatus(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	task, err := services.GetTaskData(db, c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var request dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task.Status = request.Status
	task.Completed = request.Status == model.StatusCompleted

	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    task.Status,
		"completed": task.Completed,
	})
}
