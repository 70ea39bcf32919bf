package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Skotchmaster/webstore/internal/models"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	HTTP_ADDR   string
	LOG_LEVEL   string

	// seed principals for the in-memory credential store
	USER_USERNAME  string
	USER_PASSWORD  string
	ADMIN_USERNAME string
	ADMIN_PASSWORD string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        os.Getenv("DB_PORT"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		HTTP_ADDR:      getenvDefault("HTTP_ADDR", ":8080"),
		LOG_LEVEL:      getenvDefault("LOG_LEVEL", "info"),
		USER_USERNAME:  getenvDefault("USER_USERNAME", "user"),
		USER_PASSWORD:  getenvDefault("USER_PASSWORD", "password"),
		ADMIN_USERNAME: getenvDefault("ADMIN_USERNAME", "admin"),
		ADMIN_PASSWORD: getenvDefault("ADMIN_PASSWORD", "admin"),
	}

	return config, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB(configuration *Config) (*gorm.DB, error) {
	host := configuration.DB_HOST
	port := configuration.DB_PORT
	user := configuration.DB_USER
	password := configuration.DB_PASSWORD
	dbname := configuration.DB_NAME

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, dbname,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("не удалось выполнить миграцию: %w", err)
	}
	return db, nil
}
