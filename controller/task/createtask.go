package task

import (
	"net/http"

	"taskplanner/dto"
	"taskplanner/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTask(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	priority := request.Priority
	if priority == "" {
		priority = "medium"
	}

	newTask := model.Task{
		UserID:       int(userID),
		Title:        request.Title,
		Description:  request.Description,
		DueDate:      request.DueDate,
		ReminderDate: request.ReminderDate,
		Priority:     priority,
		Category:     request.Category,
		Status:       model.StatusPending,
	}

	if err := db.Create(&newTask).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    newTask,
	})
}
