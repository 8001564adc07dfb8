package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date format used for equality
// comparison. Appointments only ever conflict within the same date.
const DateLayout = "2006-01-02"

// TimeLayout is the minute-granularity time-of-day format ("HH:mm").
const TimeLayout = "15:04"

// Appointment is a scheduled veterinarian-pet visit. For a fixed
// veterinarian and date, the active appointments must have pairwise
// non-overlapping [StartTime, EndTime) intervals.
type Appointment struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	PetID          string    `json:"pet_id" bson:"pet_id"`
	VeterinarianID string    `json:"veterinarian_id" bson:"veterinarian_id"`
	Date           string    `json:"date" bson:"date"`
	StartTime      string    `json:"start_time" bson:"start_time"`
	EndTime        string    `json:"end_time" bson:"end_time"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64   `json:"price" bson:"price"`
	Active         bool      `json:"active" bson:"active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// MinutesOfDay converts an "HH:mm" string to minutes since midnight.
func MinutesOfDay(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// overlap. Touching endpoints (one ending exactly when the other starts)
// do not count as overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// FindConflict scans snapshot for an active appointment of the given
// veterinarian on the given date whose interval overlaps
// [startMin, endMin). The appointment with excludeID is skipped, so an
// edit does not conflict with its own stored version.
//
// When vetID or date is empty, or either bound is negative, the check
// trivially passes and nil is returned. Required-field validation runs
// before this, so the permissive default is unreachable through the API.
func FindConflict(snapshot []Appointment, vetID, date string, startMin, endMin int, excludeID string) *Appointment {
	if vetID == "" || date == "" || startMin < 0 || endMin < 0 {
		return nil
	}

	for i := range snapshot {
		item := &snapshot[i]
		if excludeID != "" && item.ID == excludeID {
			continue
		}
		if item.VeterinarianID != vetID || item.Date != date {
			continue
		}
		if !item.Active {
			continue
		}

		itemStart, err := MinutesOfDay(item.StartTime)
		if err != nil {
			continue
		}
		itemEnd, err := MinutesOfDay(item.EndTime)
		if err != nil {
			continue
		}

		if Overlaps(startMin, endMin, itemStart, itemEnd) {
			return item
		}
	}
	return nil
}
