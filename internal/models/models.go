package models

import (
	"time"
)

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:100;not null"        json:"name"`
	Description     string    `gorm:"size:500"                 json:"description"`
	Price           float64   `gorm:"not null"                 json:"price"`
	QuantityInStock int       `gorm:"not null"                 json:"quantity_in_stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	FirstName    string    `gorm:"not null"                 json:"first_name"`
	LastName     string    `gorm:"not null"                 json:"last_name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	Active       bool      `gorm:"default:true"             json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
