package appointment

import "github.com/MobiPetApp/mobipet-server/internal/models"

// ===============================
// List buckets
// ===============================

// Every list view derives from the same three buckets.

type Buckets struct {
	Incoming []models.Appointment `json:"incoming"`
	Ongoing  []models.Appointment `json:"ongoing"`
	Past     []models.Appointment `json:"past"`
}

const (
	RolePetOwner = "pet_owner"
	RoleVet      = "vet"
	RoleAdmin    = "admin"
)

// Partition splits the fetched appointments into incoming/ongoing/past for
// one caller. The input is de-duplicated by id first, so the same appointment
// can never appear twice even if the fetch returned duplicate rows.
func Partition(apps []models.Appointment, role string, userID uint) Buckets {
	var b Buckets
	seen := make(map[uint]struct{}, len(apps))

	for _, ap := range apps {
		if _, dup := seen[ap.ID]; dup {
			continue
		}
		seen[ap.ID] = struct{}{}

		switch Status(ap.Status) {
		case StatusWaitingForVet, StatusTimeProposed:
			if isIncomingFor(ap, role, userID) {
				b.Incoming = append(b.Incoming, ap)
			}
		case StatusConfirmed:
			if isMine(ap, role, userID) {
				b.Ongoing = append(b.Ongoing, ap)
			}
		case StatusCompleted, StatusDeclined:
			if isPastFor(ap, role, userID) {
				b.Past = append(b.Past, ap)
			}
		}
	}

	return b
}

// Vets see unclaimed waiting jobs as available work; owners see everything of
// theirs that is still waiting on a decision.
func isIncomingFor(ap models.Appointment, role string, userID uint) bool {
	switch role {
	case RoleVet:
		if Status(ap.Status) == StatusWaitingForVet {
			return ap.VetID == nil
		}
		return false
	case RolePetOwner:
		return ap.PetOwnerID == userID
	}
	return false
}

func isMine(ap models.Appointment, role string, userID uint) bool {
	switch role {
	case RoleVet:
		return ap.VetID != nil && *ap.VetID == userID
	case RolePetOwner:
		return ap.PetOwnerID == userID
	}
	return false
}

// Declined jobs stay visible to the vet who declined them even though the
// appointment never got a vet assigned.
func isPastFor(ap models.Appointment, role string, userID uint) bool {
	if isMine(ap, role, userID) {
		return true
	}
	if role == RoleVet && ap.DeclinedBy != nil && *ap.DeclinedBy == userID {
		return true
	}
	return false
}
