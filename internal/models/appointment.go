package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ServiceLine is one catalog service attached to a booking, priced at the
// moment of creation.
type ServiceLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ServiceLines []ServiceLine

func (s ServiceLines) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ServiceLines) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported type for ServiceLines")
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetOwnerID uint `gorm:"index;not null" json:"pet_owner_id"`
	PetOwner   User `gorm:"foreignKey:PetOwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// VetID is null until a vet claims the job.
	VetID *uint `gorm:"index" json:"vet_id"`
	Vet   *User `gorm:"foreignKey:VetID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vet,omitempty"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	Services   ServiceLines `gorm:"type:jsonb" json:"services"`
	TotalPrice float64      `json:"total_price"`
	FinalPrice *float64     `json:"final_price"`

	Date      string `gorm:"size:10;not null" json:"date"`
	TimeSlot  string `gorm:"size:20;not null" json:"time_slot"`
	TimeOfDay string `gorm:"size:20" json:"time_of_day"`

	Address        string   `gorm:"size:255;not null" json:"address"`
	AdditionalInfo string   `gorm:"size:500" json:"additional_info"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Serviceable    bool     `gorm:"default:true" json:"serviceable"`

	Notes string `gorm:"size:1000" json:"notes"`

	Status string `gorm:"size:20;index;default:'waiting_for_vet'" json:"status"`

	ClinicalRecordID *uint `json:"clinical_record_id"`

	Paid             bool   `gorm:"default:false" json:"paid"`
	PaymentReference string `gorm:"size:100" json:"payment_reference,omitempty"`

	AcceptedAt  *time.Time `json:"accepted_at"`
	DeclinedAt  *time.Time `json:"declined_at"`
	DeclinedBy  *uint      `json:"declined_by"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
