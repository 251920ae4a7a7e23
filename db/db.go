package db

import (
	"fmt"
	"log"
	"os"

	"toolroom/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.User{}, &models.Loan{}, &models.PurchaseRequest{}); err != nil {
		return err
	}

	// delivered only ever true on approved rows
	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_status_delivered
	  ON %s (status, delivered);
	`, models.RequestTable, models.RequestTable)).Error; err != nil {
		return err
	}

	return nil
}
