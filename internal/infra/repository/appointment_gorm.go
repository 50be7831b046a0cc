package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Users / Pets
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found", "User not found.")
		}
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) ListEnabledVets(
	ctx context.Context,
) ([]models.User, error) {

	var vets []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND is_enabled = ?", domain.RoleVet, true).
		Find(&vets).Error; err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *AppointmentGormRepository) GetPetForOwner(
	ctx context.Context,
	petID uint,
	ownerID uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", petID, ownerID).
		First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("pet_not_found", "Pet not found.")
		}
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Appointment (create / fetch)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Vet").
		Where("pet_owner_id = ?", ownerID).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForVet(
	ctx context.Context,
	vetID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Where(
			"vet_id = ? OR declined_by = ? OR (vet_id IS NULL AND status = ?)",
			vetID, vetID, string(domain.StatusWaitingForVet),
		).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) ClaimAppointment(
	ctx context.Context,
	appointmentID uint,
	vetID uint,
	now time.Time,
) (*models.Appointment, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"id = ? AND (vet_id IS NULL OR vet_id = ?) AND status = ?",
			appointmentID, vetID, string(domain.StatusWaitingForVet),
		).
		Updates(map[string]any{
			"vet_id":      vetID,
			"status":      string(domain.StatusConfirmed),
			"accepted_at": now,
		})

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the id is unknown or another vet got there first.
		var ap models.Appointment
		if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, httperr.ErrConflict("already_claimed", "This job was just accepted by another vet.")
	}

	return r.GetAppointmentByID(ctx, appointmentID)
}

func (r *AppointmentGormRepository) UpdateAppointmentFrom(
	ctx context.Context,
	ap *models.Appointment,
	expected domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(expected)).
		Select(
			"vet_id", "status", "services", "final_price",
			"date", "time_slot", "time_of_day",
			"accepted_at", "declined_at", "declined_by", "completed_at",
			"clinical_record_id", "paid", "payment_reference",
		).
		Updates(ap)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", appointmentID).
			Delete(&models.TimeProposal{}).Error; err != nil {
			return err
		}

		// The status condition guards against a vet completing or declining
		// the visit between the caller's read and this delete.
		res := tx.
			Where(
				"id = ? AND status NOT IN ?",
				appointmentID,
				[]string{string(domain.StatusCompleted), string(domain.StatusDeclined)},
			).
			Delete(&models.Appointment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var ap models.Appointment
			if err := tx.First(&ap, appointmentID).Error; err != nil {
				return httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
			}
			return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
		}
		return nil
	})
}

// --------------------------------------------------
// Time proposals
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateProposal(
	ctx context.Context,
	ap *models.Appointment,
	p *models.TimeProposal,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var pending int64
		if err := tx.
			Model(&models.TimeProposal{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"appointment_id = ? AND status = ?",
				ap.ID, string(domain.ProposalPending),
			).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return httperr.ErrConflict("proposal_pending", "A time proposal is already waiting for a response.")
		}

		res := tx.
			Model(&models.Appointment{}).
			Where("id = ? AND status = ?", ap.ID, string(domain.StatusWaitingForVet)).
			Update("status", string(domain.StatusTimeProposed))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
		}

		return tx.Create(p).Error
	})
}

func (r *AppointmentGormRepository) GetProposalByID(
	ctx context.Context,
	id uint,
) (*models.TimeProposal, error) {

	var p models.TimeProposal
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("proposal_not_found", "Time proposal not found.")
		}
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) ListProposalsForAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.TimeProposal, error) {

	var proposals []models.TimeProposal
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *AppointmentGormRepository) SaveProposalResponse(
	ctx context.Context,
	ap *models.Appointment,
	p *models.TimeProposal,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.
			Model(&models.TimeProposal{}).
			Where("id = ? AND status = ?", p.ID, string(domain.ProposalPending)).
			Update("status", p.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("proposal_not_pending", "This proposal was already answered or withdrawn.")
		}

		res = tx.
			Model(&models.Appointment{}).
			Where("id = ? AND status = ?", ap.ID, string(domain.StatusTimeProposed)).
			Select("vet_id", "status", "date", "time_slot", "time_of_day", "accepted_at").
			Updates(ap)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
		}
		return nil
	})
}

func (r *AppointmentGormRepository) DeleteProposal(
	ctx context.Context,
	ap *models.Appointment,
	p *models.TimeProposal,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.
			Where("id = ? AND status = ?", p.ID, string(domain.ProposalPending)).
			Delete(&models.TimeProposal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("proposal_not_pending", "This proposal was already answered or withdrawn.")
		}

		res = tx.
			Model(&models.Appointment{}).
			Where("id = ? AND status = ?", ap.ID, string(domain.StatusTimeProposed)).
			Update("status", string(domain.StatusWaitingForVet))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
		}
		return nil
	})
}

// --------------------------------------------------
// Clinical records
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClinicalRecordByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.ClinicalRecord, error) {

	var rec models.ClinicalRecord
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("clinical_record_not_found", "Clinical record not found.")
		}
		return nil, err
	}
	return &rec, nil
}

func (r *AppointmentGormRepository) SaveClinicalRecord(
	ctx context.Context,
	rec *models.ClinicalRecord,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rec).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Appointment{}).
			Where("id = ?", rec.AppointmentID).
			Update("clinical_record_id", rec.ID).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
