package appointment

import (
	"context"
	"time"

	"github.com/MobiPetApp/mobipet-server/internal/models"
)

type Repository interface {
	// -------- Users / Pets --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListEnabledVets(
		ctx context.Context,
	) ([]models.User, error)

	GetPetForOwner(
		ctx context.Context,
		petID uint,
		ownerID uint,
	) (*models.Pet, error)

	// -------- Appointment (create / fetch) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)

	// ListAppointmentsForVet returns the vet's own appointments plus every
	// unclaimed waiting job.
	ListAppointmentsForVet(
		ctx context.Context,
		vetID uint,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------

	// ClaimAppointment performs the conditional accept: the update only
	// lands if the job is still unclaimed and waiting. Zero rows affected
	// surfaces as a conflict to the losing vet.
	ClaimAppointment(
		ctx context.Context,
		appointmentID uint,
		vetID uint,
		now time.Time,
	) (*models.Appointment, error)

	// UpdateAppointmentFrom saves ap compare-and-set style: the write only
	// lands if the persisted status still equals expected.
	UpdateAppointmentFrom(
		ctx context.Context,
		ap *models.Appointment,
		expected Status,
	) error

	// DeleteAppointment is the destructive owner cancel.
	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Time proposals --------

	// CreateProposal inserts the proposal and flips the appointment to
	// time_proposed in one transaction; fails with a conflict if a pending
	// proposal already exists.
	CreateProposal(
		ctx context.Context,
		ap *models.Appointment,
		p *models.TimeProposal,
	) error

	GetProposalByID(
		ctx context.Context,
		id uint,
	) (*models.TimeProposal, error)

	ListProposalsForAppointment(
		ctx context.Context,
		appointmentID uint,
	) ([]models.TimeProposal, error)

	// SaveProposalResponse persists the owner's accept/decline together with
	// the appointment change in one transaction.
	SaveProposalResponse(
		ctx context.Context,
		ap *models.Appointment,
		p *models.TimeProposal,
	) error

	// DeleteProposal hard-deletes a withdrawn proposal and reverts the
	// appointment in one transaction.
	DeleteProposal(
		ctx context.Context,
		ap *models.Appointment,
		p *models.TimeProposal,
	) error

	// -------- Clinical records --------
	GetClinicalRecordByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.ClinicalRecord, error)

	SaveClinicalRecord(
		ctx context.Context,
		rec *models.ClinicalRecord,
	) error
}
