package timeentry

import (
	"net/http"
	"time"

	"taskplanner/dto"
	"taskplanner/middleware"
	"taskplanner/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TimeEntryController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/timeentries", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			AllTimeEntries(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTimeEntry(c, db)
		})
		routes.POST("/start", func(c *gin.Context) {
			StartTracking(c, db)
		})
		routes.POST("/stop", func(c *gin.Context) {
			StopTracking(c, db)
		})
	}
}

// durationSeconds derives the stored duration from a closed interval.
func durationSeconds(start time.Time, end time.Time) int64 {
	return int64(end.Sub(start).Seconds())
}

// AllTimeEntries lists the caller's entries newest-first, with the running
// entry (if any) and the total seconds tracked since midnight.
func AllTimeEntries(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var entries []model.TimeEntry
	if err := db.Where("user_id = ?", userID).Order("start_time DESC").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time entries"})
		return
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayTotal int64
	var activeEntry *model.TimeEntry
	for i := range entries {
		e := entries[i]
		if e.IsActive && activeEntry == nil {
			activeEntry = &entries[i]
		}
		if e.DurationSeconds != nil && !e.StartTime.Before(todayStart) {
			todayTotal += *e.DurationSeconds
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"time_entries":        entries,
		"active_entry":        activeEntry,
		"today_total_seconds": todayTotal,
	})
}

func CreateTimeEntry(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	entry := model.TimeEntry{
		UserID:      int(userID),
		TaskID:      request.TaskID,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Description: request.Description,
	}
	if request.EndTime != nil {
		if request.EndTime.Before(request.StartTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
			return
		}
		seconds := durationSeconds(request.StartTime, *request.EndTime)
		entry.DurationSeconds = &seconds
	}

	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Time entry added successfully",
		"time_entry": entry,
	})
}
