package appointment

import (
	"time"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Accept claims the job for the acting vet. The persistence layer still has to
// close the concurrent-claim race with a conditional update; this only guards
// the state the caller observed.
func Accept(ap *models.Appointment, vetID uint, now time.Time) error {
	if err := CanAccept(Status(ap.Status)); err != nil {
		return err
	}
	if ap.VetID != nil && *ap.VetID != vetID {
		return httperr.ErrConflict("already_claimed", "This job was just accepted by another vet.")
	}

	ap.VetID = &vetID
	ap.Status = string(StatusConfirmed)
	ap.AcceptedAt = &now
	return nil
}

func Decline(ap *models.Appointment, vetID uint, now time.Time) error {
	if err := CanDecline(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeclined)
	ap.DeclinedAt = &now
	ap.DeclinedBy = &vetID
	return nil
}

// Complete closes the visit. The caller must already have verified that a
// clinical record exists (it is auto-created when missing).
func Complete(ap *models.Appointment, vetID uint, additional models.ServiceLines, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if ap.VetID == nil || *ap.VetID != vetID {
		return httperr.ErrAuthorization("not_assigned_vet", "Only the assigned vet can complete this appointment.")
	}

	final := ap.TotalPrice
	for _, line := range additional {
		final += line.Price
	}

	ap.Services = append(ap.Services, additional...)
	ap.FinalPrice = &final
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Cancel validates the destructive owner cancel. The row itself is deleted by
// the persistence layer, so there is no mutation here.
func Cancel(ap *models.Appointment, ownerID uint) error {
	if ap.PetOwnerID != ownerID {
		return httperr.ErrAuthorization("not_owner", "Only the pet owner can cancel this appointment.")
	}
	return CanCancel(Status(ap.Status))
}

// ===============================
// Proposal Actions
// ===============================

// MarkProposed flips the appointment into the counter-offer state.
func MarkProposed(ap *models.Appointment) error {
	if err := CanPropose(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusTimeProposed)
	return nil
}

// AcceptProposal copies the proposed date/time onto the appointment and
// confirms it for the proposing vet.
func AcceptProposal(ap *models.Appointment, p *models.TimeProposal, now time.Time) error {
	if err := CanRespondToProposal(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = p.ProposedDate
	ap.TimeSlot = p.ProposedTimeRange
	ap.TimeOfDay = TimeOfDayFor(p.ProposedTimeRange)
	ap.VetID = &p.VetID
	ap.Status = string(StatusConfirmed)
	ap.AcceptedAt = &now

	p.Status = string(ProposalAccepted)
	return nil
}

// DeclineProposal keeps the original date/time and puts the job back in front
// of the vet.
func DeclineProposal(ap *models.Appointment, p *models.TimeProposal) error {
	if err := CanRespondToProposal(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusWaitingForVet)
	p.Status = string(ProposalDeclined)
	return nil
}

// WithdrawProposal reverts the appointment; the proposal row is hard-deleted
// by the persistence layer.
func WithdrawProposal(ap *models.Appointment, p *models.TimeProposal, vetID uint) error {
	if p.VetID != vetID {
		return httperr.ErrAuthorization("not_proposing_vet", "Only the vet who proposed this time can withdraw it.")
	}
	if err := CanWithdrawProposal(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusWaitingForVet)
	return nil
}
