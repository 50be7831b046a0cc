package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"size:150;not null" json:"title"`
	Message string `gorm:"size:1000" json:"message"`

	// AppointmentID is a plain reference, not a foreign key: cancelling an
	// appointment deletes the row, but the recipient keeps the notification.
	AppointmentID *uint `json:"appointment_id"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
