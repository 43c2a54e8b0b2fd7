package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

// baseSchedule returns an active, global, all-day weekday schedule that
// overlaps anything in the same organization unless a test narrows it.
func baseSchedule(t *testing.T, id, priority int) model.Schedule {
	t.Helper()
	return model.Schedule{
		ID:             id,
		OrganizationID: 1,
		PlaylistID:     100 + id,
		Name:           "schedule",
		Priority:       priority,
		StartDate:      day(t, "2025-01-01"),
		StartTime:      tod(t, "08:00"),
		EndTime:        tod(t, "18:00"),
		DaysOfWeek:     model.EveryDay,
		IsActive:       true,
		CreatedAt:      day(t, "2025-01-01"),
	}
}

func TestFindConflictsClassifiesPriority(t *testing.T) {
	dir := testDirectory()
	candidate := baseSchedule(t, 1, 5)
	candidate.Name = "candidate"

	same := baseSchedule(t, 2, 5)
	same.Name = "same"
	higher := baseSchedule(t, 3, 9)
	higher.Name = "higher"
	lower := baseSchedule(t, 4, 1)
	lower.Name = "lower"

	got := FindConflicts(candidate, []model.Schedule{lower, higher, same}, dir)
	require.Len(t, got, 3)
	assert.Equal(t, []ConflictResult{
		{ScheduleID: 2, Name: "same", Relation: RelationSamePriority},
		{ScheduleID: 3, Name: "higher", Relation: RelationHigherPriority},
		{ScheduleID: 4, Name: "lower", Relation: RelationLowerPriority},
	}, got)
}

func TestFindConflictsSkipsOwnStoredVersion(t *testing.T) {
	dir := testDirectory()
	stored := baseSchedule(t, 1, 5)

	edited := stored
	edited.Priority = 7
	edited.Name = "edited"

	got := FindConflicts(edited, []model.Schedule{stored}, dir)
	assert.Empty(t, got)
}

func TestFindConflictsSkipsInactive(t *testing.T) {
	dir := testDirectory()
	candidate := baseSchedule(t, 1, 5)
	inactive := baseSchedule(t, 2, 5)
	inactive.IsActive = false

	assert.Empty(t, FindConflicts(candidate, []model.Schedule{inactive}, dir))
}

func TestFindConflictsTemporalFilters(t *testing.T) {
	dir := testDirectory()
	candidate := baseSchedule(t, 1, 5)

	t.Run("disjoint dates", func(t *testing.T) {
		other := baseSchedule(t, 2, 5)
		endDate := day(t, "2024-12-31")
		other.StartDate = day(t, "2024-01-01")
		other.EndDate = &endDate
		assert.Empty(t, FindConflicts(candidate, []model.Schedule{other}, dir))
	})

	t.Run("disjoint times of day", func(t *testing.T) {
		other := baseSchedule(t, 2, 5)
		other.StartTime = tod(t, "19:00")
		other.EndTime = tod(t, "22:00")
		assert.Empty(t, FindConflicts(candidate, []model.Schedule{other}, dir))
	})

	t.Run("wraparound time still conflicts", func(t *testing.T) {
		other := baseSchedule(t, 2, 5)
		other.StartTime = tod(t, "17:00")
		other.EndTime = tod(t, "02:00")
		assert.Len(t, FindConflicts(candidate, []model.Schedule{other}, dir), 1)
	})

	t.Run("disjoint weekdays", func(t *testing.T) {
		weekdayOnly := candidate
		weekdayOnly.DaysOfWeek = model.NewWeekdaySet(time.Monday, time.Wednesday)
		other := baseSchedule(t, 2, 5)
		other.DaysOfWeek = model.NewWeekdaySet(time.Saturday, time.Sunday)
		assert.Empty(t, FindConflicts(weekdayOnly, []model.Schedule{other}, dir))
	})
}

func TestFindConflictsScopeFilter(t *testing.T) {
	dir := testDirectory()

	candidate := baseSchedule(t, 1, 5)
	candidate.TargetScreenTypes = model.ScreenTypeList{model.ScreenTypeMenuBoard}

	other := baseSchedule(t, 2, 5)
	other.TargetScreenTypes = model.ScreenTypeList{model.ScreenTypeEmployeeBoard}

	assert.Empty(t, FindConflicts(candidate, []model.Schedule{other}, dir))

	global := baseSchedule(t, 3, 5)
	got := FindConflicts(candidate, []model.Schedule{other, global}, dir)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ScheduleID)
}

func TestFindConflictsIsSymmetric(t *testing.T) {
	dir := testDirectory()

	a := baseSchedule(t, 1, 5)
	a.TargetScreenTypes = model.ScreenTypeList{model.ScreenTypeMenuBoard}
	a.StartTime = tod(t, "22:00")
	a.EndTime = tod(t, "06:00")

	b := baseSchedule(t, 2, 3)
	b.TargetLocations = model.IntList{10}
	b.StartTime = tod(t, "01:00")
	b.EndTime = tod(t, "04:00")

	abConflicts := FindConflicts(a, []model.Schedule{b}, dir)
	baConflicts := FindConflicts(b, []model.Schedule{a}, dir)
	assert.Equal(t, len(abConflicts) > 0, len(baConflicts) > 0)
	assert.Len(t, abConflicts, 1)
}

func TestFindConflictsStableOrder(t *testing.T) {
	dir := testDirectory()
	candidate := baseSchedule(t, 1, 5)

	others := []model.Schedule{
		baseSchedule(t, 9, 5),
		baseSchedule(t, 3, 5),
		baseSchedule(t, 6, 5),
	}
	got := FindConflicts(candidate, others, dir)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].ScheduleID)
	assert.Equal(t, 6, got[1].ScheduleID)
	assert.Equal(t, 9, got[2].ScheduleID)
}
