package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

func tod(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	v, err := model.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func dayPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := day(t, s)
	return &d
}

func TestTimeInRange(t *testing.T) {
	tests := []struct {
		name             string
		at, start, end   string
		want             bool
	}{
		{"inside same-day range", "09:30", "09:00", "17:00", true},
		{"at start is inclusive", "09:00", "09:00", "17:00", true},
		{"at end is exclusive", "17:00", "09:00", "17:00", false},
		{"before range", "08:59", "09:00", "17:00", false},
		{"wraparound late evening", "23:30", "22:00", "06:00", true},
		{"wraparound after midnight", "02:00", "22:00", "06:00", true},
		{"wraparound midday outside", "12:00", "22:00", "06:00", false},
		{"wraparound at end is exclusive", "06:00", "22:00", "06:00", false},
		{"empty range never matches", "10:00", "10:00", "10:00", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeInRange(tod(t, tc.at), tod(t, tc.start), tod(t, tc.end))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDatesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		aStart         string
		aEnd           *string
		bStart         string
		bEnd           *string
		want           bool
	}{
		{"disjoint ranges", "2025-01-01", strPtr("2025-01-10"), "2025-01-11", strPtr("2025-01-20"), false},
		{"shared boundary day overlaps", "2025-01-01", strPtr("2025-01-10"), "2025-01-10", strPtr("2025-01-20"), true},
		{"nested ranges", "2025-01-01", strPtr("2025-12-31"), "2025-06-01", strPtr("2025-06-30"), true},
		{"both open ended", "2025-01-01", nil, "2030-01-01", nil, true},
		{"open end reaches later start", "2025-01-01", nil, "2026-05-05", strPtr("2026-05-06"), true},
		{"closed end before open start", "2025-01-01", strPtr("2025-02-01"), "2025-03-01", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var aEnd, bEnd *time.Time
			if tc.aEnd != nil {
				aEnd = dayPtr(t, *tc.aEnd)
			}
			if tc.bEnd != nil {
				bEnd = dayPtr(t, *tc.bEnd)
			}
			got := DatesOverlap(day(t, tc.aStart), aEnd, day(t, tc.bStart), bEnd)
			assert.Equal(t, tc.want, got)
			// overlap is symmetric
			assert.Equal(t, tc.want, DatesOverlap(day(t, tc.bStart), bEnd, day(t, tc.aStart), aEnd))
		})
	}
}

func TestWeekdaysOverlap(t *testing.T) {
	weekdays := model.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	weekend := model.NewWeekdaySet(time.Saturday, time.Sunday)
	assert.False(t, WeekdaysOverlap(weekdays, weekend))
	assert.True(t, WeekdaysOverlap(weekdays, model.NewWeekdaySet(time.Friday, time.Saturday)))
	assert.True(t, WeekdaysOverlap(model.EveryDay, weekend))
	assert.False(t, WeekdaysOverlap(weekdays, model.WeekdaySet(0)))
}

func TestTimeRangesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"plain overlap", "09:00", "12:00", "11:00", "14:00", true},
		{"touching boundaries do not overlap", "09:00", "11:00", "11:00", "13:00", false},
		{"wraparound hits late range", "22:00", "06:00", "23:00", "23:30", true},
		{"wraparound hits early range", "22:00", "06:00", "01:00", "03:00", true},
		{"wraparound misses midday", "22:00", "06:00", "10:00", "14:00", false},
		{"short wraparound hits early morning", "23:00", "02:00", "01:00", "04:00", true},
		{"empty candidate range", "10:00", "10:00", "00:00", "23:59", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeRangesOverlap(tod(t, tc.aStart), tod(t, tc.aEnd), tod(t, tc.bStart), tod(t, tc.bEnd))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, TimeRangesOverlap(tod(t, tc.bStart), tod(t, tc.bEnd), tod(t, tc.aStart), tod(t, tc.aEnd)))
		})
	}
}

func strPtr(s string) *string { return &s }
