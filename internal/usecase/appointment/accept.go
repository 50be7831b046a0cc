package appointment

import (
	"context"
	"time"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

type AcceptJob struct {
	repo     domain.Repository
	notifier Notifier
	feed     ChangeFeed
}

func NewAcceptJob(
	repo domain.Repository,
	notifier Notifier,
	feed ChangeFeed,
) *AcceptJob {
	return &AcceptJob{
		repo:     repo,
		notifier: notifier,
		feed:     feed,
	}
}

func (uc *AcceptJob) Execute(
	ctx context.Context,
	appointmentID uint,
	vetID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// Guard against the state the caller observed; the conditional claim
	// below is what actually closes the two-vet race.
	now := time.Now().UTC()
	if err := domain.Accept(ap, vetID, now); err != nil {
		return nil, err
	}

	claimed, err := uc.repo.ClaimAppointment(ctx, appointmentID, vetID, now)
	if err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        notify.EventAppointmentAccepted,
		Appointment: *claimed,
	})
	uc.feed.AppointmentChanged(ctx, claimed.ID, claimed.Status)

	return claimed, nil
}
