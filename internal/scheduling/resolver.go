package scheduling

import (
	"time"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

// ResolveActive selects the single schedule that should be driving a screen's
// content at the given instant, or nil if none applies. The caller falls back
// to its default playlist on nil.
//
// `at` must already be in the organization's local timezone; schedule dates,
// times of day and weekdays are all interpreted in that frame.
//
// Among matching schedules the highest priority wins; ties go to the earliest
// CreatedAt so the first-configured schedule stays in control, independent of
// input order. Equal CreatedAt falls back to the lower ID.
func ResolveActive(screen ScreenInfo, schedules []model.Schedule, at time.Time) *model.Schedule {
	tod := model.TimeOfDayFromClock(at)

	var best *model.Schedule
	for i := range schedules {
		s := &schedules[i]
		if !s.IsActive {
			continue
		}
		if !ScopeMatchesScreen(s.Scope(), screen) {
			continue
		}
		if !DateInRange(at, s.StartDate, s.EndDate) {
			continue
		}
		if !TimeInRange(tod, s.StartTime, s.EndTime) {
			continue
		}
		if !s.DaysOfWeek.Contains(at.Weekday()) {
			continue
		}
		if best == nil || beats(s, best) {
			best = s
		}
	}
	if best == nil {
		return nil
	}
	found := *best
	return &found
}

func beats(a, b *model.Schedule) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
