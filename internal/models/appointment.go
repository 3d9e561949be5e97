package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	ClientID    *uint  `gorm:"index" json:"client_id"`
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Service                   string              `gorm:"size:100;not null" json:"service"`
	ServiceID                 *uint               `gorm:"index" json:"service_id"`
	ServiceValueAtAppointment decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"service_value_at_appointment"`

	ProfessionalID *uint `gorm:"index" json:"professional_id"`

	// YYYY-MM-DD e HH:MM, sempre no fuso do dono da conta
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
