package notify

import (
	"context"
	"log"

	"github.com/MobiPetApp/mobipet-server/internal/models"
)

// Store is the slice of persistence the dispatcher needs.
type Store interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	ListEnabledVets(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// Mailer sends the best-effort email copy of a notification.
type Mailer interface {
	Send(to, subject, body string) error
}

// Dispatcher runs after the transition committed; nothing here may fail the
// request that queued the event.
type Dispatcher struct {
	store  Store
	mailer Mailer
	queue  chan Event
}

func NewDispatcher(store Store, mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		mailer: mailer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	ctx := context.Background()

	var enabledVetIDs []uint
	if ev.Type == EventNewAppointment && ev.Appointment.VetID == nil {
		vets, err := d.store.ListEnabledVets(ctx)
		if err != nil {
			log.Println("notify: listing vets failed:", err)
			return
		}
		for _, v := range vets {
			enabledVetIDs = append(enabledVetIDs, v.ID)
		}
	}

	title, _ := Render(ev)

	for _, rec := range Records(ev, enabledVetIDs) {
		rec := rec
		if err := d.store.CreateNotification(ctx, &rec); err != nil {
			log.Println("notify: insert failed:", err)
			continue
		}

		user, err := d.store.GetUserByID(ctx, rec.UserID)
		if err != nil || user.Email == "" {
			continue
		}
		if err := d.mailer.Send(user.Email, title, rec.Message); err != nil {
			log.Println("notify: email failed:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// queue full, drop rather than block the request
		log.Println("notify: queue full, dropping event", ev.Type)
	}
}
