package appointment

import (
	"context"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
)

type WithdrawProposal struct {
	repo domain.Repository
	feed ChangeFeed
}

func NewWithdrawProposal(
	repo domain.Repository,
	feed ChangeFeed,
) *WithdrawProposal {
	return &WithdrawProposal{
		repo: repo,
		feed: feed,
	}
}

func (uc *WithdrawProposal) Execute(
	ctx context.Context,
	proposalID uint,
	vetID uint,
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

	if err := domain.WithdrawProposal(ap, p, vetID); err != nil {
		return nil, err
	}

	// Withdrawal removes the proposal row for good; only the change feed is
	// told, the owner gets no notification for an offer they never saw
	// answered.
	if err := uc.repo.DeleteProposal(ctx, ap, p); err != nil {
		return nil, err
	}

	uc.feed.AppointmentChanged(ctx, ap.ID, ap.Status)

	return ap, nil
}
