package models

import "time"

type ConfirmationToken struct {
	Token         string     `gorm:"primaryKey;size:64" json:"token"`
	AppointmentID uint       `gorm:"index;not null" json:"appointment_id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	ExpiresAt     time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt        *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
}
