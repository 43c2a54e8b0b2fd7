package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/admin/packets"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/middleware"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/redis"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/scheduling"
)

type ScheduleController struct {
	store db.Store
}

func newScheduleController(store db.Store) *ScheduleController {
	return &ScheduleController{store: store}
}

// ScheduleModule mounts all authenticated /schedules endpoints.
func ScheduleModule(store db.Store) api.Module {
	ctl := newScheduleController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedules", ctl.listSchedules)
		c.POST("/schedules", ctl.createSchedule)
		c.POST("/schedules/preview", ctl.previewConflicts)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PUT("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)
	})
}

// GET /api/admin/schedules
func (s *ScheduleController) listSchedules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedules, err := s.store.ListSchedules(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list schedules"}
	}
	return schedules, nil
}

// GET /api/admin/schedules/:id
func (s *ScheduleController) getSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	sched, err := s.store.GetSchedule(id)
	if err != nil || sched.OrganizationID != user.OrganizationID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	return sched, nil
}

// POST /api/admin/schedules
func (s *ScheduleController) createSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	candidate, apiErr := s.bindSchedule(ctx, user, 0)
	if apiErr != nil {
		return nil, apiErr
	}

	warnings, apiErr := s.conflictGate(*candidate)
	if apiErr != nil {
		return nil, apiErr
	}

	created, err := s.store.CreateSchedule(*candidate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule"}
	}

	s.scheduleChanged(created)
	return packets.ScheduleResponse{Schedule: created, Warnings: warnings}, nil
}

// PUT /api/admin/schedules/:id
func (s *ScheduleController) updateSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	existing, err := s.store.GetSchedule(id)
	if err != nil || existing.OrganizationID != user.OrganizationID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	// the candidate keeps its ID so the conflict check skips the stored
	// prior version of this same schedule
	candidate, apiErr := s.bindSchedule(ctx, user, id)
	if apiErr != nil {
		return nil, apiErr
	}

	warnings, apiErr := s.conflictGate(*candidate)
	if apiErr != nil {
		return nil, apiErr
	}

	updated, err := s.store.UpdateSchedule(*candidate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update schedule"}
	}

	s.scheduleChanged(updated)
	return packets.ScheduleResponse{Schedule: updated, Warnings: warnings}, nil
}

// POST /api/admin/schedules/preview
//
// Dry-run conflict check: same validation and detection as a save, but
// nothing is persisted. The UI uses it to warn while the form is still open.
func (s *ScheduleController) previewConflicts(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	candidate, apiErr := s.bindSchedule(ctx, user, scheduleIDFromQuery(ctx))
	if apiErr != nil {
		return nil, apiErr
	}

	conflicts, apiErr := s.findConflicts(*candidate)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.ConflictCheckResponse{
		Conflicts:  conflicts,
		WouldBlock: hasBlockingConflict(conflicts),
	}, nil
}

// DELETE /api/admin/schedules/:id
func (s *ScheduleController) deleteSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	existing, err := s.store.GetSchedule(id)
	if err != nil || existing.OrganizationID != user.OrganizationID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	if err := s.store.DeleteSchedule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete schedule"}
	}
	s.scheduleChanged(existing)
	return gin.H{"deleted": id}, nil
}

// bindSchedule parses and validates the request body into a model.Schedule
// owned by the user's organization. Ill-formed schedules are rejected here;
// the resolution engine downstream assumes validated input.
func (s *ScheduleController) bindSchedule(ctx *gin.Context, user *model.User, id int) (*model.Schedule, *api.APIError) {
	var req packets.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_date"}
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid end_date"}
		}
		if parsed.Before(startDate) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "end_date before start_date"}
		}
		endDate = &parsed
	}

	startTime, err := model.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_time"}
	}
	endTime, err := model.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid end_time"}
	}
	if startTime == endTime {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "start_time equals end_time, schedule would never run"}
	}

	var days model.WeekdaySet
	for _, name := range req.DaysOfWeek {
		d, err := model.ParseWeekday(name)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		}
		days |= model.NewWeekdaySet(d)
	}

	if req.ScreenID != nil {
		screen, err := s.store.GetScreenByID(*req.ScreenID)
		if err != nil || screen.OrganizationID != user.OrganizationID {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown screen"}
		}
		if len(req.TargetScreenTypes) > 0 || len(req.TargetLocations) > 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "screen_id cannot be combined with type or location targets"}
		}
	}

	if len(req.TargetLocations) > 0 {
		locations, err := s.store.ListLocations(user.OrganizationID)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load locations"}
		}
		known := make(map[int]bool, len(locations))
		for _, l := range locations {
			known[l.ID] = true
		}
		for _, locID := range req.TargetLocations {
			if !known[locID] {
				return nil, &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown location %d", locID)}
			}
		}
	}

	// Screens keep the lenient open-enum mapping for values written before a
	// type was known here, but a schedule targeting a type nobody declared
	// would match nothing, so unknown names are rejected outright.
	types := make(model.ScreenTypeList, 0, len(req.TargetScreenTypes))
	for _, raw := range req.TargetScreenTypes {
		st := model.ParseScreenType(raw)
		if st == model.ScreenTypeOther && raw != string(model.ScreenTypeOther) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown screen type %q", raw)}
		}
		types = append(types, st)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &model.Schedule{
		ID:                id,
		OrganizationID:    user.OrganizationID,
		PlaylistID:        req.PlaylistID,
		Name:              req.Name,
		Priority:          req.Priority,
		StartDate:         startDate,
		EndDate:           endDate,
		StartTime:         startTime,
		EndTime:           endTime,
		DaysOfWeek:        days,
		ScreenID:          req.ScreenID,
		TargetScreenTypes: types,
		TargetLocations:   model.IntList(req.TargetLocations),
		IsActive:          isActive,
		CreatedBy:         user.ID,
	}, nil
}

func (s *ScheduleController) findConflicts(candidate model.Schedule) ([]scheduling.ConflictResult, *api.APIError) {
	snapshot, err := s.store.ListActiveSchedules(candidate.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load existing schedules"}
	}
	dir, err := screenDirectory(s.store, candidate.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load screens"}
	}
	return scheduling.FindConflicts(candidate, snapshot, dir), nil
}

// conflictGate blocks the save on same- or higher-priority conflicts and
// passes lower-priority ones through as warnings. An inactive candidate is
// invisible to conflict detection and never runs, so it is saved unblocked;
// its conflicts still come back as warnings for whoever activates it later.
func (s *ScheduleController) conflictGate(candidate model.Schedule) ([]scheduling.ConflictResult, *api.APIError) {
	conflicts, apiErr := s.findConflicts(candidate)
	if apiErr != nil {
		return nil, apiErr
	}
	if candidate.IsActive && hasBlockingConflict(conflicts) {
		return nil, &api.APIError{
			Code:    http.StatusConflict,
			Message: "schedule conflicts with existing schedules",
			Details: conflicts,
		}
	}
	return conflicts, nil
}

func hasBlockingConflict(conflicts []scheduling.ConflictResult) bool {
	for _, c := range conflicts {
		if c.Relation != scheduling.RelationLowerPriority {
			return true
		}
	}
	return false
}

func (s *ScheduleController) scheduleChanged(sched model.Schedule) {
	redis.InvalidateScheduleSnapshot(context.Background(), sched.OrganizationID)
	middleware.NotifyScheduleChanged(sched.OrganizationID, sched.ID)
	log.Info().Int("schedule_id", sched.ID).Int("organization_id", sched.OrganizationID).
		Msg("schedule changed, snapshot invalidated")
}

func scheduleIDFromQuery(ctx *gin.Context) int {
	id, err := strconv.Atoi(ctx.Query("schedule_id"))
	if err != nil {
		return 0
	}
	return id
}

// screenDirectory snapshots the organization's screens for scope matching.
func screenDirectory(store db.Store, organizationID int) (scheduling.ScreenMap, error) {
	screens, err := store.ListScreens(organizationID)
	if err != nil {
		return nil, err
	}
	dir := make(scheduling.ScreenMap, len(screens))
	for _, sc := range screens {
		dir[sc.ID] = scheduling.ScreenInfo{ID: sc.ID, Type: sc.ScreenType, LocationID: sc.LocationID}
	}
	return dir, nil
}
