package appointment

import (
	"context"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
)

type CancelBooking struct {
	repo domain.Repository
	feed ChangeFeed
}

func NewCancelBooking(
	repo domain.Repository,
	feed ChangeFeed,
) *CancelBooking {
	return &CancelBooking{
		repo: repo,
		feed: feed,
	}
}

// Execute removes the appointment row entirely. The cancel is destructive and
// irreversible; pending proposals go with it.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if err := domain.Cancel(ap, ownerID); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.feed.AppointmentChanged(ctx, appointmentID, "cancelled")

	return nil
}
