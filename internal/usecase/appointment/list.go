package appointment

import (
	"context"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

// ======================================================
// BUCKETED LISTING
// ======================================================

type ListBuckets struct {
	repo domain.Repository
}

func NewListBuckets(repo domain.Repository) *ListBuckets {
	return &ListBuckets{repo: repo}
}

func (uc *ListBuckets) Execute(
	ctx context.Context,
	userID uint,
	role string,
) (domain.Buckets, error) {

	var (
		apps []models.Appointment
		err  error
	)

	switch role {
	case domain.RoleVet:
		apps, err = uc.repo.ListAppointmentsForVet(ctx, userID)
	case domain.RolePetOwner:
		apps, err = uc.repo.ListAppointmentsForOwner(ctx, userID)
	default:
		return domain.Buckets{}, httperr.ErrAuthorization("invalid_role", "Appointments are listed per pet owner or vet.")
	}
	if err != nil {
		return domain.Buckets{}, err
	}

	return domain.Partition(apps, role, userID), nil
}

// ======================================================
// PROPOSALS FOR ONE APPOINTMENT
// ======================================================

type ListProposals struct {
	repo domain.Repository
}

func NewListProposals(repo domain.Repository) *ListProposals {
	return &ListProposals{repo: repo}
}

func (uc *ListProposals) Execute(
	ctx context.Context,
	appointmentID uint,
	callerID uint,
	role string,
) ([]models.TimeProposal, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RolePetOwner:
		if ap.PetOwnerID != callerID {
			return nil, httperr.ErrAuthorization("not_owner", "You can only view proposals on your own appointments.")
		}
	case domain.RoleVet, domain.RoleAdmin:
		// vets see proposals on any job they could act on
	default:
		return nil, httperr.ErrAuthorization("invalid_role", "Proposals are visible to owners and vets.")
	}

	return uc.repo.ListProposalsForAppointment(ctx, appointmentID)
}
