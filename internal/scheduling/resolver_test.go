package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

// 2025-06-11 is a Wednesday.
func wednesdayAt(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", "2025-06-11 "+clock)
	require.NoError(t, err)
	return ts
}

func TestResolveActiveFilters(t *testing.T) {
	screen := ScreenInfo{ID: 1, Type: model.ScreenTypeMenuBoard, LocationID: 10}
	at := wednesdayAt(t, "09:00")

	t.Run("no schedules", func(t *testing.T) {
		assert.Nil(t, ResolveActive(screen, nil, at))
	})

	t.Run("inactive schedule ignored", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		s.IsActive = false
		assert.Nil(t, ResolveActive(screen, []model.Schedule{s}, at))
	})

	t.Run("scope mismatch ignored", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		s.TargetScreenTypes = model.ScreenTypeList{model.ScreenTypeEmployeeBoard}
		assert.Nil(t, ResolveActive(screen, []model.Schedule{s}, at))
	})

	t.Run("outside date range ignored", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		end := day(t, "2025-05-31")
		s.EndDate = &end
		assert.Nil(t, ResolveActive(screen, []model.Schedule{s}, at))
	})

	t.Run("outside time of day ignored", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		s.StartTime = tod(t, "12:00")
		s.EndTime = tod(t, "14:00")
		assert.Nil(t, ResolveActive(screen, []model.Schedule{s}, at))
	})

	t.Run("weekday not in set ignored", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		s.DaysOfWeek = model.NewWeekdaySet(time.Saturday, time.Sunday)
		assert.Nil(t, ResolveActive(screen, []model.Schedule{s}, at))
	})

	t.Run("matching schedule returned", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		got := ResolveActive(screen, []model.Schedule{s}, at)
		require.NotNil(t, got)
		assert.Equal(t, 1, got.ID)
	})

	t.Run("wraparound schedule matches after midnight", func(t *testing.T) {
		s := baseSchedule(t, 1, 5)
		s.StartTime = tod(t, "22:00")
		s.EndTime = tod(t, "06:00")
		got := ResolveActive(screen, []model.Schedule{s}, wednesdayAt(t, "02:30"))
		require.NotNil(t, got)
		assert.Equal(t, 1, got.ID)
	})
}

func TestResolveActivePriority(t *testing.T) {
	screen := ScreenInfo{ID: 1, Type: model.ScreenTypeMenuBoard, LocationID: 10}
	at := wednesdayAt(t, "09:00")

	low := baseSchedule(t, 1, 1)
	high := baseSchedule(t, 2, 9)

	got := ResolveActive(screen, []model.Schedule{low, high}, at)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
}

func TestResolveActiveTieBreakByCreatedAt(t *testing.T) {
	screen := ScreenInfo{ID: 1, Type: model.ScreenTypeMenuBoard, LocationID: 10}
	at := wednesdayAt(t, "09:00")

	older := baseSchedule(t, 5, 5)
	older.CreatedAt = day(t, "2025-01-01")
	newer := baseSchedule(t, 2, 5)
	newer.CreatedAt = day(t, "2025-03-01")

	// the first-configured schedule wins regardless of input order
	for _, schedules := range [][]model.Schedule{
		{older, newer},
		{newer, older},
	} {
		got := ResolveActive(screen, schedules, at)
		require.NotNil(t, got)
		assert.Equal(t, 5, got.ID)
	}
}

func TestResolveActiveSpecificScreenBeatsNothingElse(t *testing.T) {
	screenA := ScreenInfo{ID: 1, Type: model.ScreenTypeMenuBoard, LocationID: 10}
	screenB := ScreenInfo{ID: 2, Type: model.ScreenTypeMenuBoard, LocationID: 10}
	at := wednesdayAt(t, "09:00")

	targetID := 1
	pinned := baseSchedule(t, 1, 5)
	pinned.ScreenID = &targetID

	got := ResolveActive(screenA, []model.Schedule{pinned}, at)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)

	// same type and location, but a different screen
	assert.Nil(t, ResolveActive(screenB, []model.Schedule{pinned}, at))
}
