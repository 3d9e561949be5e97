package models

import "time"

type Subscriber struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index" json:"user_id"`
	Email  string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PreapprovalID    string     `gorm:"size:64" json:"preapproval_id"`
	Subscribed       bool       `gorm:"not null;default:false" json:"subscribed"`
	SubscriptionTier *string    `gorm:"size:20" json:"subscription_tier"`
	SubscriptionEnd  *time.Time `json:"subscription_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
