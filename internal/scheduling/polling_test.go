package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

func laConfig(t *testing.T) model.PollingConfiguration {
	t.Helper()
	return model.PollingConfiguration{
		OrganizationID: 1,
		Timezone:       "America/Los_Angeles",
		Periods: model.TimePeriodList{
			{Name: "prep_time", Start: tod(t, "06:00"), End: tod(t, "10:00"), IntervalSeconds: 15},
			{Name: "midday", Start: tod(t, "10:00"), End: tod(t, "12:00"), IntervalSeconds: 37},
			{Name: "service_time", Start: tod(t, "12:00"), End: tod(t, "06:00"), IntervalSeconds: 900},
		},
		EmergencyIntervalSeconds: 5,
		EmergencyTimeoutHours:    4,
	}
}

func laTime(t *testing.T, clock string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	ts, err := time.ParseInLocation("2006-01-02 15:04", "2025-06-11 "+clock, loc)
	require.NoError(t, err)
	return ts.UTC()
}

func TestResolveIntervalPeriods(t *testing.T) {
	cfg := laConfig(t)

	t.Run("morning period", func(t *testing.T) {
		got, clear := ResolveInterval(cfg, laTime(t, "07:00"))
		assert.Nil(t, clear)
		assert.Equal(t, IntervalResult{IntervalSeconds: 15, IsEmergency: false, PeriodName: "prep_time"}, got)
	})

	t.Run("late evening falls in wraparound period", func(t *testing.T) {
		got, clear := ResolveInterval(cfg, laTime(t, "23:00"))
		assert.Nil(t, clear)
		assert.Equal(t, IntervalResult{IntervalSeconds: 900, IsEmergency: false, PeriodName: "service_time"}, got)
	})

	t.Run("early morning falls in wraparound period", func(t *testing.T) {
		got, _ := ResolveInterval(cfg, laTime(t, "03:30"))
		assert.Equal(t, "service_time", got.PeriodName)
	})
}

func TestResolveIntervalEmergency(t *testing.T) {
	now := laTime(t, "07:00")

	t.Run("active override short-circuits periods", func(t *testing.T) {
		cfg := laConfig(t)
		started := now.Add(-30 * time.Minute)
		cfg.EmergencyOverride = true
		cfg.EmergencyStartedAt = &started

		got, clear := ResolveInterval(cfg, now)
		assert.Nil(t, clear)
		assert.Equal(t, IntervalResult{IntervalSeconds: 5, IsEmergency: true, PeriodName: "emergency"}, got)
	})

	t.Run("elapsed timeout returns to periods and requests a clear", func(t *testing.T) {
		cfg := laConfig(t)
		started := now.Add(-5 * time.Hour)
		cfg.EmergencyOverride = true
		cfg.EmergencyStartedAt = &started

		got, clear := ResolveInterval(cfg, now)
		require.NotNil(t, clear)
		assert.Equal(t, cfg.OrganizationID, clear.OrganizationID)
		require.NotNil(t, clear.StartedAt)
		assert.True(t, clear.StartedAt.Equal(started))
		assert.False(t, got.IsEmergency)
		assert.Equal(t, "prep_time", got.PeriodName)
	})

	t.Run("timeout boundary is inclusive", func(t *testing.T) {
		cfg := laConfig(t)
		started := now.Add(-4 * time.Hour)
		cfg.EmergencyOverride = true
		cfg.EmergencyStartedAt = &started

		_, clear := ResolveInterval(cfg, now)
		assert.NotNil(t, clear)
	})

	t.Run("override with no start timestamp is treated as expired", func(t *testing.T) {
		cfg := laConfig(t)
		cfg.EmergencyOverride = true

		got, clear := ResolveInterval(cfg, now)
		require.NotNil(t, clear)
		assert.Nil(t, clear.StartedAt)
		assert.False(t, got.IsEmergency)
	})

	t.Run("expiry is idempotent across independent resolvers", func(t *testing.T) {
		cfg := laConfig(t)
		started := now.Add(-5 * time.Hour)
		cfg.EmergencyOverride = true
		cfg.EmergencyStartedAt = &started

		// two devices resolve against the same snapshot near the boundary
		first, clearA := ResolveInterval(cfg, now)
		second, clearB := ResolveInterval(cfg, now)
		assert.False(t, first.IsEmergency)
		assert.False(t, second.IsEmergency)
		require.NotNil(t, clearA)
		require.NotNil(t, clearB)

		// both clears apply without re-toggling anything
		cleared := DeactivateEmergency(cfg)
		cleared = DeactivateEmergency(cleared)
		assert.False(t, cleared.EmergencyOverride)
		assert.Nil(t, cleared.EmergencyStartedAt)
	})
}

func TestResolveIntervalFallback(t *testing.T) {
	t.Run("gap in periods", func(t *testing.T) {
		cfg := laConfig(t)
		cfg.Periods = model.TimePeriodList{
			{Name: "morning", Start: tod(t, "06:00"), End: tod(t, "10:00"), IntervalSeconds: 15},
		}
		got, _ := ResolveInterval(cfg, laTime(t, "13:00"))
		assert.Equal(t, IntervalResult{IntervalSeconds: FallbackIntervalSeconds, PeriodName: FallbackPeriodName}, got)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		cfg := laConfig(t)
		cfg.Timezone = "Not/AZone"
		got, _ := ResolveInterval(cfg, laTime(t, "07:00"))
		assert.Equal(t, FallbackPeriodName, got.PeriodName)
		assert.Equal(t, FallbackIntervalSeconds, got.IntervalSeconds)
	})

	t.Run("no periods configured", func(t *testing.T) {
		cfg := laConfig(t)
		cfg.Periods = nil
		got, _ := ResolveInterval(cfg, laTime(t, "07:00"))
		assert.Equal(t, FallbackPeriodName, got.PeriodName)
	})
}

func TestActivateDeactivateEmergency(t *testing.T) {
	cfg := laConfig(t)
	now := laTime(t, "07:00")

	activated := ActivateEmergency(cfg, now)
	assert.True(t, activated.EmergencyOverride)
	require.NotNil(t, activated.EmergencyStartedAt)
	assert.True(t, activated.EmergencyStartedAt.Equal(now))
	// input snapshot untouched
	assert.False(t, cfg.EmergencyOverride)

	deactivated := DeactivateEmergency(activated)
	assert.False(t, deactivated.EmergencyOverride)
	assert.Nil(t, deactivated.EmergencyStartedAt)
}

func TestPeriodsTileDay(t *testing.T) {
	cfg := laConfig(t)
	assert.True(t, PeriodsTileDay(cfg.Periods))

	gappy := model.TimePeriodList{
		{Name: "morning", Start: tod(t, "06:00"), End: tod(t, "10:00"), IntervalSeconds: 15},
		{Name: "rest", Start: tod(t, "12:00"), End: tod(t, "06:00"), IntervalSeconds: 900},
	}
	assert.False(t, PeriodsTileDay(gappy))

	assert.False(t, PeriodsTileDay(nil))
}
