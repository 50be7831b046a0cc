package appointment

import (
	"context"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type ProposeTimeInput struct {
	AppointmentID uint
	VetID         uint

	ProposedDate      string
	ProposedTimeRange string
	ProposedExactTime string
	Message           string
}

// ======================================================
// USE CASE
// ======================================================

type ProposeTime struct {
	repo     domain.Repository
	notifier Notifier
	feed     ChangeFeed
}

func NewProposeTime(
	repo domain.Repository,
	notifier Notifier,
	feed ChangeFeed,
) *ProposeTime {
	return &ProposeTime{
		repo:     repo,
		notifier: notifier,
		feed:     feed,
	}
}

func (uc *ProposeTime) Execute(
	ctx context.Context,
	in ProposeTimeInput,
) (*models.TimeProposal, error) {

	if err := domain.ValidateSchedule(in.ProposedDate, in.ProposedTimeRange); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if ap.VetID != nil && *ap.VetID != in.VetID {
		return nil, httperr.ErrAuthorization("not_assigned_vet", "This appointment is assigned to another vet.")
	}

	if err := domain.MarkProposed(ap); err != nil {
		return nil, err
	}

	p := &models.TimeProposal{
		AppointmentID:     ap.ID,
		VetID:             in.VetID,
		ProposedDate:      in.ProposedDate,
		ProposedTimeRange: in.ProposedTimeRange,
		ProposedExactTime: in.ProposedExactTime,
		Message:           in.Message,
		Status:            string(domain.ProposalPending),
	}

	// Status flip and proposal insert land together or not at all.
	if err := uc.repo.CreateProposal(ctx, ap, p); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        notify.EventTimeProposed,
		Appointment: *ap,
		Message:     in.Message,
	})
	uc.feed.AppointmentChanged(ctx, ap.ID, ap.Status)

	return p, nil
}
