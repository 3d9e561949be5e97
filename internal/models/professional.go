package models

import "time"

type Professional struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
