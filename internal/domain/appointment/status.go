package appointment

import "github.com/MobiPetApp/mobipet-server/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusWaitingForVet Status = "waiting_for_vet"
	StatusTimeProposed  Status = "time_proposed"
	StatusConfirmed     Status = "confirmed"
	StatusCompleted     Status = "completed"
	StatusDeclined      Status = "declined"
)

// ===============================
// Proposal Status
// ===============================

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalDeclined ProposalStatus = "declined"
)

func InitialStatus() Status {
	return StatusWaitingForVet
}

// IsTerminal reports whether no further transition is allowed from s.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusDeclined
}

// ===============================
// Transition guards
// ===============================

// CanAccept allows a vet to claim a submitted job.
func CanAccept(current Status) error {
	if current != StatusWaitingForVet {
		return httperr.ErrInvalidState("invalid_state", "This appointment can no longer be accepted.")
	}
	return nil
}

// CanDecline allows a vet to turn a submitted job down.
func CanDecline(current Status) error {
	if current != StatusWaitingForVet {
		return httperr.ErrInvalidState("invalid_state", "This appointment can no longer be declined.")
	}
	return nil
}

// CanPropose allows a vet to counter-offer a different date/time. While a
// counter-offer is already pending the failure is a conflict, not a bad state:
// the job itself is still open, another offer just got there first.
func CanPropose(current Status) error {
	if current == StatusTimeProposed {
		return httperr.ErrConflict("proposal_pending", "A time proposal is already waiting for a response.")
	}
	if current != StatusWaitingForVet {
		return httperr.ErrInvalidState("invalid_state", "A time can only be proposed while the appointment is waiting for a vet.")
	}
	return nil
}

// CanRespondToProposal allows the owner to accept or decline a pending counter-offer.
func CanRespondToProposal(current Status) error {
	if current != StatusTimeProposed {
		return httperr.ErrInvalidState("invalid_state", "There is no pending time proposal on this appointment.")
	}
	return nil
}

// CanWithdrawProposal allows the proposing vet to take the counter-offer back.
func CanWithdrawProposal(current Status) error {
	if current != StatusTimeProposed {
		return httperr.ErrInvalidState("invalid_state", "There is no pending time proposal on this appointment.")
	}
	return nil
}

// CanComplete allows the assigned vet to close out a confirmed visit.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrInvalidState("invalid_state", "Only a confirmed appointment can be completed.")
	}
	return nil
}

// CanCancel allows the owner to cancel anything that has not finished.
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidState("invalid_state", "A finished appointment cannot be cancelled.")
	}
	return nil
}
