package booking

import (
	"fmt"
	"time"

	"quickcowork/models"
)

const dateLayout = "2006-01-02"

const (
	minDurationHours = 1
	maxDurationHours = 8
)

// Validate checks a booking draft against the target space. It returns nil
// when the draft is submittable, or a *ValidationError listing every failing
// field. Date comparisons are date-only; time of day is carried separately
// by the start-time label.
func Validate(draft models.BookingDraft, space models.Space) error {
	var fields []FieldError
	fail := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	// Parsed dates are UTC midnights, so compare against a UTC "today".
	today := truncateToDate(time.Now().UTC())

	var startDate time.Time
	switch {
	case draft.StartDate == "":
		fail("startDate", "start date is required")
	default:
		var err error
		startDate, err = time.Parse(dateLayout, draft.StartDate)
		if err != nil {
			fail("startDate", "start date must be YYYY-MM-DD")
		} else if startDate.Before(today) {
			fail("startDate", "start date cannot be in the past")
		}
	}

	if draft.EndDate != "" {
		endDate, err := time.Parse(dateLayout, draft.EndDate)
		if err != nil {
			fail("endDate", "end date must be YYYY-MM-DD")
		} else if !startDate.IsZero() && endDate.Before(startDate) {
			fail("endDate", "end date cannot be before start date")
		}
	}

	if !space.AllowsStartTime(draft.StartTime) {
		fail("startTime", "start time is not available for this space")
	}

	if draft.DurationHours < minDurationHours || draft.DurationHours > maxDurationHours {
		fail("duration", fmt.Sprintf("duration must be between %d and %d hours", minDurationHours, maxDurationHours))
	}

	if draft.GuestCount < 1 || draft.GuestCount > space.Capacity {
		fail("guests", fmt.Sprintf("guest count must be between 1 and %d", space.Capacity))
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
