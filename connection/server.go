package connection

import (
	"log"

	"taskplanner/controller/auth"
	"taskplanner/controller/notification"
	"taskplanner/controller/report"
	"taskplanner/controller/settings"
	"taskplanner/controller/task"
	"taskplanner/controller/timeentry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	db, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, db)

	task.TaskController(router, db)

	notification.NotificationController(router, db)

	settings.SettingsController(router, db)

	timeentry.TimeEntryController(router, db)

	report.ReportController(router, db)

	router.Run()
}
