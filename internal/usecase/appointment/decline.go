package appointment

import (
	"context"
	"time"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

type DeclineJob struct {
	repo     domain.Repository
	notifier Notifier
	feed     ChangeFeed
}

func NewDeclineJob(
	repo domain.Repository,
	notifier Notifier,
	feed ChangeFeed,
) *DeclineJob {
	return &DeclineJob{
		repo:     repo,
		notifier: notifier,
		feed:     feed,
	}
}

func (uc *DeclineJob) Execute(
	ctx context.Context,
	appointmentID uint,
	vetID uint,
	message string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := domain.Decline(ap, vetID, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentFrom(ctx, ap, domain.StatusWaitingForVet); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        notify.EventAppointmentDeclined,
		Appointment: *ap,
		Message:     message,
	})
	uc.feed.AppointmentChanged(ctx, ap.ID, ap.Status)

	return ap, nil
}
