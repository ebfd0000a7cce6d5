package settings

import (
	"net/http"

	"taskplanner/dto"
	"taskplanner/middleware"
	"taskplanner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SettingsController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/settings", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetSettings(c, db)
		})
		routes.PUT("", func(c *gin.Context) {
			UpdateSettings(c, db)
		})
	}
}

func GetSettings(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	profile, err := services.GetOrCreateProfile(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func UpdateSettings(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.GetOrCreateProfile(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	if request.Bio != nil {
		profile.Bio = *request.Bio
	}
	if request.Timezone != nil {
		profile.Timezone = *request.Timezone
	}
	if request.Theme != nil {
		profile.Theme = *request.Theme
	}
	if request.EmailNotifications != nil {
		profile.EmailNotifications = *request.EmailNotifications
	}
	if request.SoundNotifications != nil {
		profile.SoundNotifications = *request.SoundNotifications
	}
	if request.ReminderNotifications != nil {
		profile.ReminderNotifications = *request.ReminderNotifications
	}
	if request.DueDateNotifications != nil {
		profile.DueDateNotifications = *request.DueDateNotifications
	}
	if request.CompletedTaskNotifications != nil {
		profile.CompletedTaskNotifications = *request.CompletedTaskNotifications
	}
	if request.DashboardLayout != nil {
		profile.DashboardLayout = *request.DashboardLayout
	}
	if request.ItemsPerPage != nil {
		profile.ItemsPerPage = *request.ItemsPerPage
	}
	if request.DefaultPriority != nil {
		profile.DefaultPriority = *request.DefaultPriority
	}

	if err := db.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings updated successfully",
		"profile": profile,
	})
}
