package appointment

import (
	"testing"
	"time"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

func waitingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:         1,
		PetOwnerID: 10,
		Status:     string(StatusWaitingForVet),
		Date:       "2025-06-01",
		TimeSlot:   "10:00-12:00",
		TimeOfDay:  TimeOfDayMorning,
		TotalPrice: 299,
		Services: models.ServiceLines{
			{ID: "after-hours", Name: "After-hours visit", Price: 299},
		},
	}
}

func TestAccept(t *testing.T) {
	now := time.Now()

	t.Run("claims an unassigned job", func(t *testing.T) {
		ap := waitingAppointment()
		if err := Accept(ap, 42, now); err != nil {
			t.Fatalf("Accept() error = %v", err)
		}
		if ap.Status != string(StatusConfirmed) {
			t.Errorf("status = %q, want confirmed", ap.Status)
		}
		if ap.VetID == nil || *ap.VetID != 42 {
			t.Errorf("vet_id = %v, want 42", ap.VetID)
		}
		if ap.AcceptedAt == nil || !ap.AcceptedAt.Equal(now) {
			t.Errorf("accepted_at = %v, want %v", ap.AcceptedAt, now)
		}
	})

	t.Run("rejects a job claimed by someone else", func(t *testing.T) {
		ap := waitingAppointment()
		other := uint(7)
		ap.VetID = &other

		err := Accept(ap, 42, now)
		if !httperr.IsKind(err, httperr.KindConflict) {
			t.Fatalf("Accept() error = %v, want conflict", err)
		}
	})

	t.Run("allows the pre-assigned vet to accept", func(t *testing.T) {
		ap := waitingAppointment()
		self := uint(42)
		ap.VetID = &self

		if err := Accept(ap, 42, now); err != nil {
			t.Fatalf("Accept() error = %v", err)
		}
	})
}

func TestDecline(t *testing.T) {
	now := time.Now()
	ap := waitingAppointment()

	if err := Decline(ap, 42, now); err != nil {
		t.Fatalf("Decline() error = %v", err)
	}
	if ap.Status != string(StatusDeclined) {
		t.Errorf("status = %q, want declined", ap.Status)
	}
	if ap.DeclinedBy == nil || *ap.DeclinedBy != 42 {
		t.Errorf("declined_by = %v, want 42", ap.DeclinedBy)
	}
	if ap.DeclinedAt == nil {
		t.Error("declined_at not set")
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()

	t.Run("adds extra charges to the final price", func(t *testing.T) {
		ap := waitingAppointment()
		vet := uint(42)
		ap.VetID = &vet
		ap.Status = string(StatusConfirmed)

		extra := models.ServiceLines{{ID: "additional", Name: "Wound dressing", Price: 50}}
		if err := Complete(ap, 42, extra, now); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}

		if ap.FinalPrice == nil || *ap.FinalPrice != 349 {
			t.Errorf("final_price = %v, want 349", ap.FinalPrice)
		}
		if ap.Status != string(StatusCompleted) {
			t.Errorf("status = %q, want completed", ap.Status)
		}
		if len(ap.Services) != 2 {
			t.Errorf("services = %d lines, want 2", len(ap.Services))
		}
	})

	t.Run("no extras keeps final equal to total", func(t *testing.T) {
		ap := waitingAppointment()
		vet := uint(42)
		ap.VetID = &vet
		ap.Status = string(StatusConfirmed)

		if err := Complete(ap, 42, nil, now); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
		if ap.FinalPrice == nil || *ap.FinalPrice != 299 {
			t.Errorf("final_price = %v, want 299", ap.FinalPrice)
		}
	})

	t.Run("only the assigned vet may complete", func(t *testing.T) {
		ap := waitingAppointment()
		vet := uint(42)
		ap.VetID = &vet
		ap.Status = string(StatusConfirmed)

		err := Complete(ap, 7, nil, now)
		if !httperr.IsKind(err, httperr.KindAuthorization) {
			t.Fatalf("Complete() error = %v, want authorization", err)
		}
	})
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		ownerID  uint
		wantKind httperr.Kind
	}{
		{name: "owner cancels waiting job", status: StatusWaitingForVet, ownerID: 10},
		{name: "owner cancels confirmed job", status: StatusConfirmed, ownerID: 10},
		{name: "stranger cannot cancel", status: StatusWaitingForVet, ownerID: 99, wantKind: httperr.KindAuthorization},
		{name: "completed cannot be cancelled", status: StatusCompleted, ownerID: 10, wantKind: httperr.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := waitingAppointment()
			ap.Status = string(tt.status)

			err := Cancel(ap, tt.ownerID)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Cancel() error = %v", err)
				}
				return
			}
			if !httperr.IsKind(err, tt.wantKind) {
				t.Fatalf("Cancel() error = %v, want kind %s", err, tt.wantKind)
			}
		})
	}
}

func TestProposalRoundTrip(t *testing.T) {
	now := time.Now()

	proposal := func() *models.TimeProposal {
		return &models.TimeProposal{
			ID:                5,
			AppointmentID:     1,
			VetID:             42,
			ProposedDate:      "2025-06-10",
			ProposedTimeRange: "08:00-10:00",
			Status:            string(ProposalPending),
		}
	}

	t.Run("accept copies the proposed schedule", func(t *testing.T) {
		ap := waitingAppointment()
		p := proposal()
		if err := MarkProposed(ap); err != nil {
			t.Fatalf("MarkProposed() error = %v", err)
		}

		if err := AcceptProposal(ap, p, now); err != nil {
			t.Fatalf("AcceptProposal() error = %v", err)
		}
		if ap.Date != "2025-06-10" || ap.TimeSlot != "08:00-10:00" {
			t.Errorf("schedule = %s %s, want proposed values", ap.Date, ap.TimeSlot)
		}
		if ap.TimeOfDay != TimeOfDayMorning {
			t.Errorf("time_of_day = %q, want morning", ap.TimeOfDay)
		}
		if ap.Status != string(StatusConfirmed) {
			t.Errorf("status = %q, want confirmed", ap.Status)
		}
		if ap.VetID == nil || *ap.VetID != 42 {
			t.Errorf("vet_id = %v, want the proposing vet", ap.VetID)
		}
		if p.Status != string(ProposalAccepted) {
			t.Errorf("proposal status = %q, want accepted", p.Status)
		}
	})

	t.Run("decline keeps the original schedule", func(t *testing.T) {
		ap := waitingAppointment()
		p := proposal()
		if err := MarkProposed(ap); err != nil {
			t.Fatalf("MarkProposed() error = %v", err)
		}

		if err := DeclineProposal(ap, p); err != nil {
			t.Fatalf("DeclineProposal() error = %v", err)
		}
		if ap.Date != "2025-06-01" || ap.TimeSlot != "10:00-12:00" {
			t.Errorf("schedule changed to %s %s on decline", ap.Date, ap.TimeSlot)
		}
		if ap.Status != string(StatusWaitingForVet) {
			t.Errorf("status = %q, want waiting_for_vet", ap.Status)
		}
		if p.Status != string(ProposalDeclined) {
			t.Errorf("proposal status = %q, want declined", p.Status)
		}
	})

	t.Run("only the proposing vet may withdraw", func(t *testing.T) {
		ap := waitingAppointment()
		p := proposal()
		if err := MarkProposed(ap); err != nil {
			t.Fatalf("MarkProposed() error = %v", err)
		}

		if err := WithdrawProposal(ap, p, 7); !httperr.IsKind(err, httperr.KindAuthorization) {
			t.Fatalf("WithdrawProposal() error = %v, want authorization", err)
		}

		if err := WithdrawProposal(ap, p, 42); err != nil {
			t.Fatalf("WithdrawProposal() error = %v", err)
		}
		if ap.Status != string(StatusWaitingForVet) {
			t.Errorf("status = %q, want waiting_for_vet", ap.Status)
		}
	})
}
