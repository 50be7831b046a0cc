package appointment

import (
	"context"
	"time"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

// AdditionalServiceInput is a charge added during the visit; it does not have
// to come from the booking catalog.
type AdditionalServiceInput struct {
	Name  string
	Price float64
}

type CompleteVisitInput struct {
	AppointmentID uint
	VetID         uint

	AdditionalServices []AdditionalServiceInput
}

// ======================================================
// USE CASE
// ======================================================

type CompleteVisit struct {
	repo     domain.Repository
	notifier Notifier
	feed     ChangeFeed
}

func NewCompleteVisit(
	repo domain.Repository,
	notifier Notifier,
	feed ChangeFeed,
) *CompleteVisit {
	return &CompleteVisit{
		repo:     repo,
		notifier: notifier,
		feed:     feed,
	}
}

func (uc *CompleteVisit) Execute(
	ctx context.Context,
	in CompleteVisitInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	additional := make(models.ServiceLines, 0, len(in.AdditionalServices))
	for _, svc := range in.AdditionalServices {
		if svc.Name == "" || svc.Price < 0 {
			return nil, httperr.ErrValidation("invalid_additional_service", "Additional services need a name and a non-negative price.")
		}
		additional = append(additional, models.ServiceLine{
			ID:    "additional",
			Name:  svc.Name,
			Price: svc.Price,
		})
	}

	if err := domain.Complete(ap, in.VetID, additional, time.Now().UTC()); err != nil {
		return nil, err
	}

	// Every completed visit carries a clinical record; create an empty one
	// if the vet never opened it during the visit.
	if _, err := uc.repo.GetClinicalRecordByAppointment(ctx, ap.ID); err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			return nil, err
		}
		rec := &models.ClinicalRecord{
			AppointmentID: ap.ID,
			VetID:         in.VetID,
		}
		if err := uc.repo.SaveClinicalRecord(ctx, rec); err != nil {
			return nil, err
		}
		ap.ClinicalRecordID = &rec.ID
	}

	if err := uc.repo.UpdateAppointmentFrom(ctx, ap, domain.StatusConfirmed); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        notify.EventAppointmentCompleted,
		Appointment: *ap,
	})
	uc.feed.AppointmentChanged(ctx, ap.ID, ap.Status)

	return ap, nil
}
