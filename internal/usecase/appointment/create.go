package appointment

import (
	"context"
	"strings"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	PetOwnerID uint
	PetID      uint

	ServiceIDs []string

	Date     string
	TimeSlot string

	Address        string
	AdditionalInfo string
	Latitude       *float64
	Longitude      *float64

	Notes string

	// VetID pre-assigns the booking to a single vet instead of broadcasting
	// it to everyone.
	VetID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier Notifier
	feed     ChangeFeed
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	feed ChangeFeed,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		feed:     feed,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if err := domain.ValidateSchedule(in.Date, in.TimeSlot); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Address) == "" {
		return nil, httperr.ErrValidation("missing_address", "A visit address is required.")
	}

	pet, err := uc.repo.GetPetForOwner(ctx, in.PetID, in.PetOwnerID)
	if err != nil {
		return nil, err
	}

	lines, total, err := domain.PriceServices(in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	if in.VetID != nil {
		vet, err := uc.repo.GetUserByID(ctx, *in.VetID)
		if err != nil {
			return nil, err
		}
		if vet.Role != domain.RoleVet || !vet.IsEnabled {
			return nil, httperr.ErrValidation("invalid_vet", "The selected vet is not available.")
		}
	}

	ap := &models.Appointment{
		PetOwnerID:     in.PetOwnerID,
		VetID:          in.VetID,
		PetID:          pet.ID,
		Services:       lines,
		TotalPrice:     total,
		Date:           in.Date,
		TimeSlot:       in.TimeSlot,
		TimeOfDay:      domain.TimeOfDayFor(in.TimeSlot),
		Address:        strings.TrimSpace(in.Address),
		AdditionalInfo: in.AdditionalInfo,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Serviceable:    true,
		Notes:          in.Notes,
		Status:         string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        notify.EventNewAppointment,
		Appointment: *ap,
	})
	uc.feed.AppointmentChanged(ctx, ap.ID, ap.Status)

	return ap, nil
}
