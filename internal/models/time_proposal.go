package models

import "time"

type TimeProposal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	VetID uint `gorm:"not null" json:"vet_id"`
	Vet   User `gorm:"foreignKey:VetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ProposedDate      string `gorm:"size:10;not null" json:"proposed_date"`
	ProposedTimeRange string `gorm:"size:20;not null" json:"proposed_time_range"`
	ProposedExactTime string `gorm:"size:10" json:"proposed_exact_time,omitempty"`
	Message           string `gorm:"size:500" json:"message"`

	Status string `gorm:"size:20;index;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
