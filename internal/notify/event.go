package notify

import (
	"fmt"

	"github.com/MobiPetApp/mobipet-server/internal/models"
)

// ===============================
// Events
// ===============================

type EventType string

const (
	EventNewAppointment        EventType = "new_appointment"
	EventAppointmentAccepted   EventType = "appointment_accepted"
	EventAppointmentDeclined   EventType = "appointment_declined"
	EventTimeProposed          EventType = "time_proposed"
	EventProposalAccepted      EventType = "proposal_accepted"
	EventProposalDeclined      EventType = "proposal_declined"
	EventClinicalRecordUpdated EventType = "clinical_record_updated"
	EventAppointmentCompleted  EventType = "appointment_completed"
)

// Event carries a snapshot of the appointment taken after the transition
// committed. VetID is only set for proposal responses, where the recipient is
// the proposing vet rather than anyone on the appointment row.
type Event struct {
	Type        EventType
	Appointment models.Appointment
	VetID       uint
	Message     string
}

// Recipients decides who must be informed. New-appointment events fan out to
// every enabled vet unless a vet was pre-assigned, in which case exactly that
// vet is notified; never both.
func Recipients(ev Event, enabledVetIDs []uint) []uint {
	switch ev.Type {
	case EventNewAppointment:
		if ev.Appointment.VetID != nil {
			return []uint{*ev.Appointment.VetID}
		}
		return enabledVetIDs

	case EventProposalAccepted, EventProposalDeclined:
		return []uint{ev.VetID}

	default:
		return []uint{ev.Appointment.PetOwnerID}
	}
}

// Render produces the stored title/message pair for the recipient's feed.
func Render(ev Event) (string, string) {
	ap := ev.Appointment
	when := fmt.Sprintf("%s, %s", ap.Date, ap.TimeSlot)

	switch ev.Type {
	case EventNewAppointment:
		return "New home visit request",
			fmt.Sprintf("A pet owner requested a home visit on %s.", when)

	case EventAppointmentAccepted:
		return "Your appointment was accepted",
			fmt.Sprintf("A vet accepted your appointment on %s.", when)

	case EventAppointmentDeclined:
		msg := "A vet declined your appointment."
		if ev.Message != "" {
			msg = fmt.Sprintf("A vet declined your appointment: %s", ev.Message)
		}
		return "Your appointment was declined", msg

	case EventTimeProposed:
		return "New time proposed",
			"A vet proposed a different time for your appointment. Review it to confirm or keep your original request."

	case EventProposalAccepted:
		return "Time proposal accepted",
			fmt.Sprintf("The pet owner accepted your proposed time. The visit is confirmed for %s.", when)

	case EventProposalDeclined:
		return "Time proposal declined",
			"The pet owner declined your proposed time. The original request is open again."

	case EventClinicalRecordUpdated:
		return "Clinical record updated",
			"Your vet updated the clinical record for your pet's visit."

	case EventAppointmentCompleted:
		msg := "Your vet completed the visit."
		if ap.FinalPrice != nil {
			msg = fmt.Sprintf("Your vet completed the visit. Final total: %.2f.", *ap.FinalPrice)
		}
		return "Appointment completed", msg
	}

	return string(ev.Type), ev.Message
}

// Records expands one event into the notification rows to insert.
func Records(ev Event, enabledVetIDs []uint) []models.Notification {
	title, message := Render(ev)
	recipients := Recipients(ev, enabledVetIDs)

	records := make([]models.Notification, 0, len(recipients))
	apID := ev.Appointment.ID

	for _, userID := range recipients {
		records = append(records, models.Notification{
			UserID:        userID,
			Type:          string(ev.Type),
			Title:         title,
			Message:       message,
			AppointmentID: &apID,
		})
	}
	return records
}
