package appointment

import (
	"reflect"
	"testing"

	"github.com/MobiPetApp/mobipet-server/internal/models"
)

func TestPartition(t *testing.T) {
	vet := uint(42)
	otherVet := uint(7)

	apps := []models.Appointment{
		{ID: 1, PetOwnerID: 10, Status: string(StatusWaitingForVet)},
		{ID: 2, PetOwnerID: 10, Status: string(StatusWaitingForVet), VetID: &otherVet},
		{ID: 3, PetOwnerID: 10, Status: string(StatusTimeProposed)},
		{ID: 4, PetOwnerID: 10, Status: string(StatusConfirmed), VetID: &vet},
		{ID: 5, PetOwnerID: 11, Status: string(StatusConfirmed), VetID: &otherVet},
		{ID: 6, PetOwnerID: 10, Status: string(StatusCompleted), VetID: &vet},
		{ID: 7, PetOwnerID: 10, Status: string(StatusDeclined), DeclinedBy: &vet},
		{ID: 8, PetOwnerID: 11, Status: string(StatusDeclined), DeclinedBy: &otherVet},
	}

	ids := func(list []models.Appointment) []uint {
		out := make([]uint, 0, len(list))
		for _, ap := range list {
			out = append(out, ap.ID)
		}
		return out
	}

	tests := []struct {
		name         string
		role         string
		userID       uint
		wantIncoming []uint
		wantOngoing  []uint
		wantPast     []uint
	}{
		{
			name:   "vet sees unclaimed work and own history",
			role:   RoleVet,
			userID: vet,
			// pre-assigned and counter-offered jobs are not available work
			wantIncoming: []uint{1},
			wantOngoing:  []uint{4},
			wantPast:     []uint{6, 7},
		},
		{
			name:         "owner sees only their own",
			role:         RolePetOwner,
			userID:       10,
			wantIncoming: []uint{1, 2, 3},
			wantOngoing:  []uint{4},
			wantPast:     []uint{6, 7},
		},
		{
			name:         "other owner",
			role:         RolePetOwner,
			userID:       11,
			wantIncoming: nil,
			wantOngoing:  []uint{5},
			wantPast:     []uint{8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Partition(apps, tt.role, tt.userID)

			if got := ids(b.Incoming); !equalIDs(got, tt.wantIncoming) {
				t.Errorf("incoming = %v, want %v", got, tt.wantIncoming)
			}
			if got := ids(b.Ongoing); !equalIDs(got, tt.wantOngoing) {
				t.Errorf("ongoing = %v, want %v", got, tt.wantOngoing)
			}
			if got := ids(b.Past); !equalIDs(got, tt.wantPast) {
				t.Errorf("past = %v, want %v", got, tt.wantPast)
			}
		})
	}
}

func TestPartitionDeduplicates(t *testing.T) {
	apps := []models.Appointment{
		{ID: 1, PetOwnerID: 10, Status: string(StatusWaitingForVet)},
		{ID: 1, PetOwnerID: 10, Status: string(StatusWaitingForVet)},
		{ID: 1, PetOwnerID: 10, Status: string(StatusWaitingForVet)},
	}

	b := Partition(apps, RolePetOwner, 10)
	if len(b.Incoming) != 1 {
		t.Fatalf("incoming has %d entries, want 1", len(b.Incoming))
	}
}

func TestPartitionIsIdempotent(t *testing.T) {
	vet := uint(42)
	apps := []models.Appointment{
		{ID: 1, PetOwnerID: 10, Status: string(StatusWaitingForVet)},
		{ID: 2, PetOwnerID: 10, Status: string(StatusConfirmed), VetID: &vet},
		{ID: 3, PetOwnerID: 10, Status: string(StatusCompleted), VetID: &vet},
	}

	first := Partition(apps, RoleVet, vet)
	second := Partition(apps, RoleVet, vet)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated partitioning of the same set diverged")
	}
}

func equalIDs(got, want []uint) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
