package report

import (
	"math"
	"net/http"
	"time"

	"taskplanner/middleware"
	"taskplanner/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ReportController(router *gin.Engine, db *gorm.DB) {
	router.GET("/dashboard", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Dashboard(c, db)
	})
	router.GET("/reports", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Reports(c, db)
	})
}

func countTasks(db *gorm.DB, userID uint, query string, args ...interface{}) (int64, error) {
	var count int64
	tx := db.Model(&model.Task{}).Where("user_id = ?", userID)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	err := tx.Count(&count).Error
	return count, err
}

type categoryStat struct {
	Category  string `json:"category"`
	Total     int64  `json:"total"`
	Completed int64  `json:"completed"`
}

type monthStat struct {
	Month     string `json:"month"`
	Completed int64  `json:"completed"`
}

// Reports builds the productivity report page data: status and priority
// totals, completion rate, time tracking totals, last-30-days activity,
// per-category totals and six months of completion history.
func Reports(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	now := time.Now()

	totalTasks, err := countTasks(db, userID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	completedTasks, _ := countTasks(db, userID, "completed = ?", true)
	pendingTasks, _ := countTasks(db, userID, "status = ?", model.StatusPending)
	inProgressTasks, _ := countTasks(db, userID, "status = ?", model.StatusInProgress)

	highPriority, _ := countTasks(db, userID, "priority = ?", "high")
	mediumPriority, _ := countTasks(db, userID, "priority = ?", "medium")
	lowPriority, _ := countTasks(db, userID, "priority = ?", "low")

	var completionRate float64
	if totalTasks > 0 {
		completionRate = math.Round(float64(completedTasks)/float64(totalTasks)*1000) / 10
	}

	var totalTimeEntries int64
	db.Model(&model.TimeEntry{}).Where("user_id = ?", userID).Count(&totalTimeEntries)
	var totalTimeSpent int64
	db.Model(&model.TimeEntry{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_seconds), 0)").Scan(&totalTimeSpent)

	thirtyDaysAgo := now.AddDate(0, 0, -30)
	tasksLast30Days, _ := countTasks(db, userID, "created_at >= ?", thirtyDaysAgo)
	completedLast30Days, _ := countTasks(db, userID, "completed = ? AND updated_at >= ?", true, thirtyDaysAgo)

	var categoryStats []categoryStat
	db.Model(&model.Task{}).
		Select("category, COUNT(*) AS total, SUM(completed) AS completed").
		Where("user_id = ?", userID).
		Group("category").
		Order("total DESC").
		Scan(&categoryStats)

	monthlyData := make([]monthStat, 0, 6)
	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		completed, _ := countTasks(db, userID, "completed = ? AND updated_at >= ? AND updated_at < ?",
			true, monthStart, monthEnd)
		monthlyData = append(monthlyData, monthStat{
			Month:     monthStart.Format("January 2006"),
			Completed: completed,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_tasks":            totalTasks,
		"completed_tasks":        completedTasks,
		"pending_tasks":          pendingTasks,
		"in_progress_tasks":      inProgressTasks,
		"high_priority":          highPriority,
		"medium_priority":        mediumPriority,
		"low_priority":           lowPriority,
		"completion_rate":        completionRate,
		"total_time_entries":     totalTimeEntries,
		"total_time_spent":       totalTimeSpent,
		"tasks_last_30_days":     tasksLast30Days,
		"completed_last_30_days": completedLast30Days,
		"category_stats":         categoryStats,
		"monthly_data":           monthlyData,
	})
}
