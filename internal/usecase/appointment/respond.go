package appointment

import (
	"context"
	"time"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

const (
	DecisionAccept  = "accepted"
	DecisionDecline = "declined"
)

type RespondToProposal struct {
	repo     domain.Repository
	notifier Notifier
	feed     ChangeFeed
}

func NewRespondToProposal(
	repo domain.Repository,
	notifier Notifier,
	feed ChangeFeed,
) *RespondToProposal {
	return &RespondToProposal{
		repo:     repo,
		notifier: notifier,
		feed:     feed,
	}
}

func (uc *RespondToProposal) Execute(
	ctx context.Context,
	proposalID uint,
	ownerID uint,
	decision string,
) (*models.Appointment, error) {

	p, err := uc.repo.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.Status != string(domain.ProposalPending) {
		return nil, httperr.ErrNotFound("proposal_not_pending", "This proposal was already answered or withdrawn.")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, p.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap.PetOwnerID != ownerID {
		return nil, httperr.ErrAuthorization("not_owner", "Only the pet owner can answer a time proposal.")
	}

	var evType notify.EventType

	switch decision {
	case DecisionAccept:
		if err := domain.AcceptProposal(ap, p, time.Now().UTC()); err != nil {
			return nil, err
		}
		evType = notify.EventProposalAccepted

	case DecisionDecline:
		if err := domain.DeclineProposal(ap, p); err != nil {
			return nil, err
		}
		evType = notify.EventProposalDeclined

	default:
		return nil, httperr.ErrValidation("invalid_decision", "Decision must be accepted or declined.")
	}

	if err := uc.repo.SaveProposalResponse(ctx, ap, p); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:        evType,
		Appointment: *ap,
		VetID:       p.VetID,
	})
	uc.feed.AppointmentChanged(ctx, ap.ID, ap.Status)

	return ap, nil
}
