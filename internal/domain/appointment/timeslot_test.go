package appointment

import (
	"testing"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
)

func TestTimeOfDayFor(t *testing.T) {
	tests := []struct {
		slot string
		want string
	}{
		{"08:00-10:00", TimeOfDayMorning},
		{"10:00-12:00", TimeOfDayMorning},
		{"12:00-14:00", TimeOfDayAfternoon},
		{"16:00-18:00", TimeOfDayAfternoon},
		{"18:00-20:00", TimeOfDayEvening},
		{"garbage", ""},
		{"8:00", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TimeOfDayFor(tt.slot); got != tt.want {
			t.Errorf("TimeOfDayFor(%q) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		slot     string
		wantCode string
	}{
		{name: "valid", date: "2025-06-01", slot: "08:00-10:00"},
		{name: "missing date", date: "", slot: "08:00-10:00", wantCode: "missing_date_or_time"},
		{name: "missing slot", date: "2025-06-01", slot: "", wantCode: "missing_date_or_time"},
		{name: "bad date format", date: "01/06/2025", slot: "08:00-10:00", wantCode: "invalid_date"},
		{name: "slot not in grid", date: "2025-06-01", slot: "09:00-11:00", wantCode: "invalid_time_slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.date, tt.slot)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateSchedule() error = %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Fatalf("ValidateSchedule() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}
