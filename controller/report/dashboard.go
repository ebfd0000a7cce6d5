package report

import (
	"net/http"
	"time"

	"taskplanner/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard returns the landing page statistics for the caller.
func Dashboard(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	now := time.Now()

	totalTasks, err := countTasks(db, userID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	pendingTasks, _ := countTasks(db, userID, "status = ?", model.StatusPending)
	inProgressTasks, _ := countTasks(db, userID, "status = ?", model.StatusInProgress)
	completedTasks, _ := countTasks(db, userID, "status = ?", model.StatusCompleted)

	highPriority, _ := countTasks(db, userID, "priority = ? AND completed = ?", "high", false)
	mediumPriority, _ := countTasks(db, userID, "priority = ? AND completed = ?", "medium", false)
	lowPriority, _ := countTasks(db, userID, "priority = ? AND completed = ?", "low", false)

	overdueTasks, _ := countTasks(db, userID, "due_date < ? AND completed = ?", now, false)

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	dueToday, _ := countTasks(db, userID, "due_date >= ? AND due_date < ? AND completed = ?",
		todayStart, tomorrowStart, false)

	// the seven days after today, today itself excluded
	weekEnd := todayStart.AddDate(0, 0, 8)
	dueThisWeek, _ := countTasks(db, userID, "due_date >= ? AND due_date < ? AND completed = ?",
		tomorrowStart, weekEnd, false)

	var recentTasks []model.Task
	db.Where("user_id = ?", userID).Order("created_at DESC").Limit(5).Find(&recentTasks)

	// week starts on Monday
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	weekStart := todayStart.AddDate(0, 0, -daysSinceMonday)
	completedThisWeek, _ := countTasks(db, userID, "completed = ? AND created_at >= ?", true, weekStart)

	c.JSON(http.StatusOK, gin.H{
		"total_tasks":         totalTasks,
		"pending_tasks":       pendingTasks,
		"in_progress_tasks":   inProgressTasks,
		"completed_tasks":     completedTasks,
		"high_priority":       highPriority,
		"medium_priority":     mediumPriority,
		"low_priority":        lowPriority,
		"overdue_tasks":       overdueTasks,
		"due_today":           dueToday,
		"due_this_week":       dueThisWeek,
		"recent_tasks":        recentTasks,
		"completed_this_week": completedThisWeek,
	})
}
