package notify

import (
	"strings"
	"testing"

	"github.com/MobiPetApp/mobipet-server/internal/models"
)

func TestRecipients(t *testing.T) {
	enabled := []uint{1, 2, 3}
	preAssigned := uint(2)

	tests := []struct {
		name string
		ev   Event
		want []uint
	}{
		{
			name: "new appointment broadcasts to every enabled vet",
			ev: Event{
				Type:        EventNewAppointment,
				Appointment: models.Appointment{ID: 9, PetOwnerID: 10},
			},
			want: []uint{1, 2, 3},
		},
		{
			name: "pre-assigned vet suppresses the broadcast",
			ev: Event{
				Type:        EventNewAppointment,
				Appointment: models.Appointment{ID: 9, PetOwnerID: 10, VetID: &preAssigned},
			},
			want: []uint{2},
		},
		{
			name: "proposal response goes to the proposing vet",
			ev: Event{
				Type:        EventProposalAccepted,
				Appointment: models.Appointment{ID: 9, PetOwnerID: 10},
				VetID:       42,
			},
			want: []uint{42},
		},
		{
			name: "everything else goes to the owner",
			ev: Event{
				Type:        EventAppointmentAccepted,
				Appointment: models.Appointment{ID: 9, PetOwnerID: 10},
			},
			want: []uint{10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recipients(tt.ev, enabled)
			if len(got) != len(tt.want) {
				t.Fatalf("recipients = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("recipients = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRecords(t *testing.T) {
	ev := Event{
		Type:        EventNewAppointment,
		Appointment: models.Appointment{ID: 9, PetOwnerID: 10, Date: "2025-06-01", TimeSlot: "08:00-10:00"},
	}

	records := Records(ev, []uint{1, 2})
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Type != "new_appointment" {
			t.Errorf("type = %q", rec.Type)
		}
		if rec.AppointmentID == nil || *rec.AppointmentID != 9 {
			t.Errorf("appointment_id = %v, want 9", rec.AppointmentID)
		}
		if rec.Title == "" || rec.Message == "" {
			t.Error("title or message is empty")
		}
	}
}

func TestRenderCompletedIncludesFinalPrice(t *testing.T) {
	final := 349.0
	_, msg := Render(Event{
		Type:        EventAppointmentCompleted,
		Appointment: models.Appointment{FinalPrice: &final},
	})
	if !strings.Contains(msg, "349") {
		t.Errorf("message %q does not mention the final total", msg)
	}
}
