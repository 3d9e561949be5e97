package models

import "time"

// Cliente do salão, sem login, vinculado ao dono da conta
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
