package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/admin/packets"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/middleware"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/scheduling"
)

type PollingController struct {
	store db.Store
}

func newPollingController(store db.Store) *PollingController {
	return &PollingController{store: store}
}

// PollingModule mounts the polling configuration and emergency override
// endpoints.
func PollingModule(store db.Store) api.Module {
	ctl := newPollingController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/polling", ctl.getConfig)
		c.PUT("/polling", ctl.updateConfig)
		c.POST("/polling/emergency", ctl.activateEmergency)
		c.DELETE("/polling/emergency", ctl.deactivateEmergency)
	})
}

// GET /api/admin/polling
func (p *PollingController) getConfig(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	cfg, err := p.store.GetPollingConfig(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "polling configuration not found"}
	}
	return packets.PollingConfigResponse{
		Config:         cfg,
		PeriodsTileDay: scheduling.PeriodsTileDay(cfg.Periods),
	}, nil
}

// PUT /api/admin/polling
func (p *PollingController) updateConfig(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.UpdatePollingConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown timezone"}
	}

	periods := make(model.TimePeriodList, 0, len(req.Periods))
	for _, pr := range req.Periods {
		start, err := model.ParseTimeOfDay(pr.Start)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid period start"}
		}
		end, err := model.ParseTimeOfDay(pr.End)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid period end"}
		}
		periods = append(periods, model.TimePeriod{
			Name:            pr.Name,
			Start:           start,
			End:             end,
			IntervalSeconds: pr.IntervalSeconds,
		})
	}

	cfg := model.PollingConfiguration{
		OrganizationID:           user.OrganizationID,
		Timezone:                 req.Timezone,
		Periods:                  periods,
		EmergencyIntervalSeconds: req.EmergencyIntervalSeconds,
		EmergencyTimeoutHours:    req.EmergencyTimeoutHours,
	}

	// Gaps are legal but devices inside one get the fallback interval, so
	// surface the defect to operators instead of rejecting the write.
	tiles := scheduling.PeriodsTileDay(periods)
	if !tiles {
		log.Warn().Int("organization_id", user.OrganizationID).
			Msg("polling periods do not cover the full day, devices will fall back inside gaps")
	}

	if err := p.store.SavePollingConfig(cfg); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save polling configuration"}
	}

	saved, err := p.store.GetPollingConfig(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reload polling configuration"}
	}
	return packets.PollingConfigResponse{Config: saved, PeriodsTileDay: tiles}, nil
}

// POST /api/admin/polling/emergency
func (p *PollingController) activateEmergency(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	cfg, err := p.store.GetPollingConfig(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "polling configuration not found"}
	}

	now := time.Now().UTC()
	if err := p.store.ActivateEmergency(user.OrganizationID, now); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not activate emergency override"}
	}

	log.Info().Int("organization_id", user.OrganizationID).
		Int("interval_seconds", cfg.EmergencyIntervalSeconds).
		Int("timeout_hours", cfg.EmergencyTimeoutHours).
		Msg("emergency override activated")
	middleware.NotifyEmergencyChanged(user.OrganizationID, true, cfg.EmergencyIntervalSeconds)

	updated := scheduling.ActivateEmergency(cfg, now)
	return updated, nil
}

// DELETE /api/admin/polling/emergency
func (p *PollingController) deactivateEmergency(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	cfg, err := p.store.GetPollingConfig(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "polling configuration not found"}
	}

	if err := p.store.DeactivateEmergency(user.OrganizationID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not deactivate emergency override"}
	}

	log.Info().Int("organization_id", user.OrganizationID).Msg("emergency override deactivated")
	middleware.NotifyEmergencyChanged(user.OrganizationID, false, 0)

	return scheduling.DeactivateEmergency(cfg), nil
}
