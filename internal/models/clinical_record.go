package models

import "time"

type ClinicalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	VetID uint `gorm:"not null" json:"vet_id"`
	Vet   User `gorm:"foreignKey:VetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Diagnosis string `gorm:"size:1000" json:"diagnosis"`
	Treatment string `gorm:"size:1000" json:"treatment"`

	SharedNotes string `gorm:"size:2000" json:"shared_notes"`

	// ConfidentialNotes are visible to the vet only, never serialized for owners.
	ConfidentialNotes string `gorm:"size:2000" json:"confidential_notes,omitempty"`

	FollowUpDate *time.Time `json:"follow_up_date"`
	FollowUpType string     `gorm:"size:50" json:"follow_up_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
