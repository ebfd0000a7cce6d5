package connection

import (
	"fmt"
	"log"
	"os"

	"taskplanner/model"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DBConnection opens the MySQL database from environment configuration and
// migrates the schema. DB_DSN wins when set; otherwise the DSN is assembled
// from DB_USER/DB_PASSWORD/DB_HOST/DB_PORT/DB_NAME.
func DBConnection() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "127.0.0.1"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "3306"
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), host, port, os.Getenv("DB_NAME"))
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Notification{},
		&model.UserProfile{},
		&model.TimeEntry{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
