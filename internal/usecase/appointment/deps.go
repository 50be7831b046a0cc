package appointment

import (
	"context"

	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

// Notifier queues post-commit notifications; delivery never fails the
// transition that queued it.
type Notifier interface {
	Dispatch(ev notify.Event)
}

// ChangeFeed publishes committed transitions for the presentation layer.
type ChangeFeed interface {
	AppointmentChanged(ctx context.Context, appointmentID uint, status string)
}
