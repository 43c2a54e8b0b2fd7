package scheduling

import (
	"time"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

const (
	// FallbackIntervalSeconds is returned when the configuration cannot
	// produce an interval: the timezone does not load or no period covers
	// the current time of day. A device with no interval is worse than one
	// with a conservative default.
	FallbackIntervalSeconds = 900

	FallbackPeriodName  = "fallback"
	EmergencyPeriodName = "emergency"
)

// IntervalResult is the wire-visible answer to a device's "how soon should I
// check in again". PeriodName is "emergency" during an override and
// "fallback" when the configuration is defective, so callers can detect and
// surface both states.
type IntervalResult struct {
	IntervalSeconds int    `json:"interval_seconds"`
	IsEmergency     bool   `json:"is_emergency"`
	PeriodName      string `json:"period_name"`
}

// EmergencyClear is a pending persistence update: the emergency override
// timed out during resolution and should be cleared. StartedAt carries the
// start timestamp observed by this resolver so the store can write a
// conditional compare-and-clear that no-ops if the override was re-activated
// (or already cleared) in the meantime. Applying the same clear twice is
// harmless.
type EmergencyClear struct {
	OrganizationID int
	StartedAt      *time.Time
}

// ResolveInterval computes the polling interval an organization's devices
// should use right now.
//
// An active emergency override short-circuits the period list until its
// timeout elapses. On timeout the override is treated as inactive for this
// result and a non-nil *EmergencyClear is returned for the caller to
// persist; resolution itself performs no I/O. A best-effort caller that
// fails to persist the clear simply gets the same clear again on the next
// check-in.
func ResolveInterval(cfg model.PollingConfiguration, now time.Time) (IntervalResult, *EmergencyClear) {
	var clear *EmergencyClear

	if cfg.EmergencyOverride {
		if !emergencyExpired(cfg, now) {
			return IntervalResult{
				IntervalSeconds: cfg.EmergencyIntervalSeconds,
				IsEmergency:     true,
				PeriodName:      EmergencyPeriodName,
			}, nil
		}
		clear = &EmergencyClear{
			OrganizationID: cfg.OrganizationID,
			StartedAt:      cfg.EmergencyStartedAt,
		}
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fallbackResult(), clear
	}

	tod := model.TimeOfDayFromClock(now.In(loc))
	for _, p := range cfg.Periods {
		if TimeInRange(tod, p.Start, p.End) {
			return IntervalResult{
				IntervalSeconds: p.IntervalSeconds,
				PeriodName:      p.Name,
			}, clear
		}
	}

	// Periods should tile the day; reaching here means operator error.
	return fallbackResult(), clear
}

// emergencyExpired also treats an override with no recorded start as expired:
// without a start timestamp the timeout can never be evaluated, and an
// unbounded emergency interval must not be left running.
func emergencyExpired(cfg model.PollingConfiguration, now time.Time) bool {
	if cfg.EmergencyStartedAt == nil {
		return true
	}
	timeout := time.Duration(cfg.EmergencyTimeoutHours) * time.Hour
	return now.Sub(*cfg.EmergencyStartedAt) >= timeout
}

func fallbackResult() IntervalResult {
	return IntervalResult{
		IntervalSeconds: FallbackIntervalSeconds,
		PeriodName:      FallbackPeriodName,
	}
}

// ActivateEmergency returns a copy of cfg with the override switched on,
// stamped at now. Field updates only; the period list is untouched.
func ActivateEmergency(cfg model.PollingConfiguration, now time.Time) model.PollingConfiguration {
	started := now
	cfg.EmergencyOverride = true
	cfg.EmergencyStartedAt = &started
	return cfg
}

// DeactivateEmergency returns a copy of cfg with the override cleared.
func DeactivateEmergency(cfg model.PollingConfiguration) model.PollingConfiguration {
	cfg.EmergencyOverride = false
	cfg.EmergencyStartedAt = nil
	return cfg
}

// PeriodsTileDay reports whether the period list covers every minute of the
// day. Admin writes use it to warn about gaps; resolution never depends on
// it and falls back instead.
func PeriodsTileDay(periods model.TimePeriodList) bool {
	var covered [model.MinutesPerDay]bool
	for _, p := range periods {
		for _, span := range splitTimeRange(p.Start, p.End) {
			for m := span.start; m < span.end; m++ {
				covered[m] = true
			}
		}
	}
	for _, c := range covered {
		if !c {
			return false
		}
	}
	return true
}
