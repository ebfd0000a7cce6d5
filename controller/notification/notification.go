package notification

import (
	"net/http"

	"taskplanner/middleware"
	"taskplanner/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NotificationController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/notifications", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			UnreadNotifications(c, db)
		})
		routes.POST("/:id/read", func(c *gin.Context) {
			MarkNotificationRead(c, db)
		})
	}
}

// UnreadNotifications returns the ten newest unread notifications for the
// caller, the shape the notification bell polls for.
func UnreadNotifications(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var notifications []model.Notification
	err := db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Limit(10).
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func MarkNotificationRead(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var notification model.Notification
	err := db.Where("notification_id = ? AND user_id = ?", c.Param("id"), userID).
		First(&notification).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Notification not found"})
		return
	}

	notification.IsRead = true
	if err := db.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
