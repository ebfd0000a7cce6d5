package timeentry

import (
	"net/http"
	"strconv"
	"time"

	"taskplanner/dto"
	"taskplanner/model"
	"taskplanner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// stopActiveEntry closes the user's running entry, if one exists.
func stopActiveEntry(db *gorm.DB, userID uint, now time.Time) (*model.TimeEntry, error) {
	var active model.TimeEntry
	err := db.Where("user_id = ? AND is_active = ?", userID, true).First(&active).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	end := now
	seconds := durationSeconds(active.StartTime, end)
	active.EndTime = &end
	active.DurationSeconds = &seconds
	active.IsActive = false
	if err := db.Save(&active).Error; err != nil {
		return nil, err
	}
	return &active, nil
}

// StartTracking stops whatever is running and opens a new active entry,
// optionally tied to one of the caller's tasks.
func StartTracking(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var request dto.StartTrackingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	now := time.Now()
	if _, err := stopActiveEntry(db, userID, now); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stop active entry"})
		return
	}

	if request.TaskID != nil {
		if _, err := services.GetTaskData(db, strconv.Itoa(*request.TaskID), userID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
	}

	entry := model.TimeEntry{
		UserID:    int(userID),
		TaskID:    request.TaskID,
		StartTime: now,
		IsActive:  true,
	}
	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start time tracking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Time tracking started",
		"time_entry": entry,
	})
}

func StopTracking(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	stopped, err := stopActiveEntry(db, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stop time tracking"})
		return
	}
	if stopped == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No active time tracking to stop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Time tracking stopped",
		"time_entry": stopped,
	})
}
