package task

import (
	"net/http"
	"time"

	"taskplanner/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AllTasks lists the caller's tasks newest-first together with the counts the
// task list page shows.
func AllTasks(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var tasks []model.Task
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	now := time.Now()
	var completedCount, pendingCount, overdueCount int
	for _, t := range tasks {
		if t.Completed {
			completedCount++
		}
		if t.Status == model.StatusPending {
			pendingCount++
		}
		if t.IsOverdue(now) {
			overdueCount++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":           tasks,
		"completed_count": completedCount,
		"pending_count":   pendingCount,
		"overdue_count":   overdueCount,
	})
}
