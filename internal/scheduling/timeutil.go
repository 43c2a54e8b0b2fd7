// Package scheduling implements the content scheduling resolution engine:
// wraparound time arithmetic, target scope matching, schedule conflict
// detection, active schedule resolution and polling interval resolution.
// Everything here is pure with respect to its inputs; loading schedules and
// polling configurations, and persisting the one mutation this package can
// request (the emergency clear), is the caller's job.
package scheduling

import (
	"time"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

// TimeInRange reports whether t falls in the half-open range [start, end).
// When start > end the range wraps past midnight, so t matches when it is at
// or after start, or strictly before end. start == end is an empty range.
func TimeInRange(t, start, end model.TimeOfDay) bool {
	if start <= end {
		return t >= start && t < end
	}
	return t >= start || t < end
}

// DatesOverlap reports whether two inclusive date ranges intersect. A nil end
// means the range is open-ended.
func DatesOverlap(aStart time.Time, aEnd *time.Time, bStart time.Time, bEnd *time.Time) bool {
	aS, bS := dateOnly(aStart), dateOnly(bStart)
	if aEnd != nil && dateOnly(*aEnd).Before(bS) {
		return false
	}
	if bEnd != nil && dateOnly(*bEnd).Before(aS) {
		return false
	}
	return true
}

// DateInRange reports whether the date of t falls inside the inclusive range.
func DateInRange(t time.Time, start time.Time, end *time.Time) bool {
	d := dateOnly(t)
	if d.Before(dateOnly(start)) {
		return false
	}
	if end != nil && d.After(dateOnly(*end)) {
		return false
	}
	return true
}

// WeekdaysOverlap reports whether two weekday sets share at least one day.
func WeekdaysOverlap(a, b model.WeekdaySet) bool {
	return a.Overlaps(b)
}

// TimeRangesOverlap reports whether two half-open time-of-day ranges
// intersect. Wraparound ranges are split into their two same-day
// sub-intervals before the standard interval intersection test.
func TimeRangesOverlap(aStart, aEnd, bStart, bEnd model.TimeOfDay) bool {
	for _, a := range splitTimeRange(aStart, aEnd) {
		for _, b := range splitTimeRange(bStart, bEnd) {
			if a.start < b.end && b.start < a.end {
				return true
			}
		}
	}
	return false
}

type timeSpan struct {
	start, end model.TimeOfDay
}

func splitTimeRange(start, end model.TimeOfDay) []timeSpan {
	switch {
	case start == end:
		// empty range
		return nil
	case start < end:
		return []timeSpan{{start, end}}
	default:
		return []timeSpan{
			{start, model.MinutesPerDay},
			{0, end},
		}
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
