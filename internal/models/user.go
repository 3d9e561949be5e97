package models

import "time"

// Identidade de login; o perfil público fica em Profile (mesmo ID)
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Profile struct {
	ID           uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Email        string `gorm:"size:100;not null" json:"email"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	BusinessName string `gorm:"size:100" json:"business_name"`
	BusinessType string `gorm:"size:50" json:"business_type"`
	Timezone     string `gorm:"size:50" json:"timezone"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
