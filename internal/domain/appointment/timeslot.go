package appointment

import (
	"time"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
)

// ===============================
// Visit windows
// ===============================

// Home visits are booked into fixed two-hour windows.
var timeSlots = []string{
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
	"18:00-20:00",
}

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// TimeOfDayFor buckets a slot by its start hour. Unknown slots map to an
// empty bucket rather than failing; the slot itself is validated elsewhere.
func TimeOfDayFor(slot string) string {
	if len(slot) < 5 {
		return ""
	}

	start, err := time.Parse("15:04", slot[:5])
	if err != nil {
		return ""
	}

	switch h := start.Hour(); {
	case h < 12:
		return TimeOfDayMorning
	case h < 18:
		return TimeOfDayAfternoon
	default:
		return TimeOfDayEvening
	}
}

// ValidateSchedule checks the date/slot pair supplied at booking or proposal
// time.
func ValidateSchedule(date, slot string) error {
	if date == "" || slot == "" {
		return httperr.ErrValidation("missing_date_or_time", "Choose a date and a time window.")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperr.ErrValidation("invalid_date", "Invalid date.")
	}
	if !IsValidTimeSlot(slot) {
		return httperr.ErrValidation("invalid_time_slot", "Invalid time window.")
	}
	return nil
}
