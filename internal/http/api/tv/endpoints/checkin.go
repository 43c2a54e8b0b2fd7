package endpoints

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/tv/packets"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/redis"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/scheduling"
)

type CheckinController struct {
	store db.Store
	now   func() time.Time
}

func newCheckinController(store db.Store) *CheckinController {
	return &CheckinController{store: store, now: time.Now}
}

// CheckinModule mounts the device check-in endpoint. Devices identify by
// their paired device_id; this is the read path hit on every poll.
func CheckinModule(store db.Store) api.Module {
	ctl := newCheckinController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/screens/current", ctl.currentContent)
	})
}

// GET /api/tv/screens/current?device_id=...
//
// Resolves the screen's active schedule and polling interval in one shot.
// Configuration defects never fail the check-in: the device always leaves
// with an interval, falling back to a conservative default when the polling
// configuration is missing or broken.
func (t *CheckinController) currentContent(ctx *gin.Context) (any, *api.APIError) {
	deviceID := ctx.Query("device_id")
	if deviceID == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "device_id is required"}
	}

	screen, err := t.store.GetScreenByDeviceID(deviceID)
	if err != nil || !screen.Paired {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "unknown device"}
	}

	now := t.now().UTC()
	resp := packets.CurrentContentResponse{
		ScreenID:   screen.ID,
		ScreenName: screen.Name,
	}

	cfg, cfgErr := t.store.GetPollingConfig(screen.OrganizationID)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Int("organization_id", screen.OrganizationID).
			Msg("no polling configuration, using fallback interval")
		cfg = model.PollingConfiguration{OrganizationID: screen.OrganizationID, Timezone: "UTC"}
	}

	interval, clear := scheduling.ResolveInterval(cfg, now)
	if clear != nil {
		// Best effort: the compare-and-clear is idempotent and comes back
		// around on the next check-in if this write fails.
		if err := t.store.ClearExpiredEmergency(clear.OrganizationID, clear.StartedAt); err != nil {
			log.Warn().Err(err).Int("organization_id", clear.OrganizationID).
				Msg("failed to persist expired emergency clear, will retry on next check-in")
		} else {
			log.Info().Int("organization_id", clear.OrganizationID).
				Msg("emergency override expired and cleared")
		}
	}
	if interval.PeriodName == scheduling.FallbackPeriodName {
		log.Warn().Int("organization_id", screen.OrganizationID).
			Msg("polling period lookup fell back, configuration does not cover current time")
	}
	resp.IntervalSeconds = interval.IntervalSeconds
	resp.IsEmergency = interval.IsEmergency
	resp.PeriodName = interval.PeriodName

	active := t.resolveActiveSchedule(ctx, screen, cfg, now)
	if active != nil {
		resp.ScheduleID = &active.ID
		resp.ScheduleName = &active.Name

		playlist, err := t.store.GetPlaylistByID(active.PlaylistID)
		if err != nil {
			log.Error().Err(err).Int("playlist_id", active.PlaylistID).
				Msg("active schedule references unloadable playlist")
		} else {
			resp.Playlist = &playlist
		}
	}

	return resp, nil
}

func (t *CheckinController) resolveActiveSchedule(ctx *gin.Context, screen model.Screen, cfg model.PollingConfiguration, now time.Time) *model.Schedule {
	snapshot, ok := redis.GetScheduleSnapshot(ctx, screen.OrganizationID)
	if !ok {
		var err error
		snapshot, err = t.store.ListActiveSchedules(screen.OrganizationID)
		if err != nil {
			log.Error().Err(err).Int("organization_id", screen.OrganizationID).
				Msg("could not load schedule snapshot")
			return nil
		}
		redis.SetScheduleSnapshot(context.Background(), screen.OrganizationID, snapshot)
	}

	// schedule times are organization-local
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn().Str("timezone", cfg.Timezone).Int("organization_id", screen.OrganizationID).
			Msg("invalid organization timezone, resolving schedules in UTC")
		loc = time.UTC
	}

	info := scheduling.ScreenInfo{ID: screen.ID, Type: screen.ScreenType, LocationID: screen.LocationID}
	return scheduling.ResolveActive(info, snapshot, now.In(loc))
}
