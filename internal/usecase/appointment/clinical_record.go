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

type UpsertClinicalRecordInput struct {
	AppointmentID uint
	VetID         uint

	Diagnosis         string
	Treatment         string
	SharedNotes       string
	ConfidentialNotes string

	FollowUpDate string
	FollowUpType string
}

// ======================================================
// USE CASES
// ======================================================

type UpsertClinicalRecord struct {
	repo     domain.Repository
	notifier Notifier
}

func NewUpsertClinicalRecord(
	repo domain.Repository,
	notifier Notifier,
) *UpsertClinicalRecord {
	return &UpsertClinicalRecord{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *UpsertClinicalRecord) Execute(
	ctx context.Context,
	in UpsertClinicalRecordInput,
) (*models.ClinicalRecord, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if ap.VetID == nil || *ap.VetID != in.VetID {
		return nil, httperr.ErrAuthorization("not_assigned_vet", "Only the assigned vet can edit the clinical record.")
	}

	// Records are written during or right after the visit, never before the
	// job is confirmed.
	switch domain.Status(ap.Status) {
	case domain.StatusConfirmed, domain.StatusCompleted:
	default:
		return nil, httperr.ErrInvalidState("invalid_state", "The clinical record opens once the appointment is confirmed.")
	}

	rec, err := uc.repo.GetClinicalRecordByAppointment(ctx, in.AppointmentID)
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			return nil, err
		}
		rec = &models.ClinicalRecord{
			AppointmentID: in.AppointmentID,
			VetID:         in.VetID,
		}
	}

	rec.Diagnosis = in.Diagnosis
	rec.Treatment = in.Treatment
	rec.SharedNotes = in.SharedNotes
	rec.ConfidentialNotes = in.ConfidentialNotes
	rec.FollowUpType = in.FollowUpType

	if in.FollowUpDate != "" {
		followUp, err := parseDate(in.FollowUpDate)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_follow_up_date", "Invalid follow-up date.")
		}
		rec.FollowUpDate = &followUp
	} else {
		rec.FollowUpDate = nil
	}

	if err := uc.repo.SaveClinicalRecord(ctx, rec); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        notify.EventClinicalRecordUpdated,
		Appointment: *ap,
	})

	return rec, nil
}

type GetClinicalRecord struct {
	repo domain.Repository
}

func NewGetClinicalRecord(repo domain.Repository) *GetClinicalRecord {
	return &GetClinicalRecord{repo: repo}
}

// Execute returns the record scoped to the caller: owners never see the
// confidential section.
func (uc *GetClinicalRecord) Execute(
	ctx context.Context,
	appointmentID uint,
	callerID uint,
	role string,
) (*models.ClinicalRecord, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	rec, err := uc.repo.GetClinicalRecordByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleVet:
		if ap.VetID == nil || *ap.VetID != callerID {
			return nil, httperr.ErrAuthorization("not_assigned_vet", "Only the assigned vet can view this record.")
		}
		return rec, nil

	case domain.RolePetOwner:
		if ap.PetOwnerID != callerID {
			return nil, httperr.ErrAuthorization("not_owner", "You can only view records for your own appointments.")
		}
		shared := *rec
		shared.ConfidentialNotes = ""
		return &shared, nil
	}

	return nil, httperr.ErrAuthorization("invalid_role", "Clinical records are visible to the owner and the assigned vet.")
}
