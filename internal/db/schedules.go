package db

import (
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

const scheduleColumns = `
	id, organization_id, playlist_id, name, priority,
	start_date, end_date, start_time, end_time, days_of_week,
	screen_id, target_screen_types, target_locations,
	is_active, created_by, created_at, updated_at`

// ListActiveSchedules returns the organization's active schedules in a single
// query. Conflict detection and active-schedule resolution both need a
// time-consistent snapshot, so callers must not mix the result of several
// calls within one resolution pass.
func (s *pgStore) ListActiveSchedules(organizationID int) ([]model.Schedule, error) {
	var out []model.Schedule
	err := s.db.Select(&out, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE organization_id = $1 AND is_active = true
		ORDER BY id;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to list active schedules")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) ListSchedules(organizationID int) ([]model.Schedule, error) {
	var out []model.Schedule
	err := s.db.Select(&out, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE organization_id = $1
		ORDER BY id;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to list schedules")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetSchedule(id int) (model.Schedule, error) {
	var sched model.Schedule
	err := s.db.Get(&sched, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE id = $1;
	`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("failed to get schedule")
	}
	return sched, err
}

func (s *pgStore) CreateSchedule(sched model.Schedule) (model.Schedule, error) {
	var out model.Schedule
	q := `
	INSERT INTO schedules
	  (organization_id, playlist_id, name, priority,
	   start_date, end_date, start_time, end_time, days_of_week,
	   screen_id, target_screen_types, target_locations,
	   is_active, created_by, created_at, updated_at)
	VALUES
	  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,now(),now())
	RETURNING ` + scheduleColumns + `;`
	err := s.db.Get(&out, q,
		sched.OrganizationID, sched.PlaylistID, sched.Name, sched.Priority,
		sched.StartDate, sched.EndDate, sched.StartTime, sched.EndTime, sched.DaysOfWeek,
		sched.ScreenID, sched.TargetScreenTypes, sched.TargetLocations,
		sched.IsActive, sched.CreatedBy)
	if err != nil {
		log.Error().Err(err).Msg("failed to create schedule")
		return model.Schedule{}, err
	}
	return out, nil
}

func (s *pgStore) UpdateSchedule(sched model.Schedule) (model.Schedule, error) {
	var out model.Schedule
	q := `
	UPDATE schedules SET
	  playlist_id = $2, name = $3, priority = $4,
	  start_date = $5, end_date = $6, start_time = $7, end_time = $8, days_of_week = $9,
	  screen_id = $10, target_screen_types = $11, target_locations = $12,
	  is_active = $13, updated_at = now()
	WHERE id = $1
	RETURNING ` + scheduleColumns + `;`
	err := s.db.Get(&out, q,
		sched.ID, sched.PlaylistID, sched.Name, sched.Priority,
		sched.StartDate, sched.EndDate, sched.StartTime, sched.EndTime, sched.DaysOfWeek,
		sched.ScreenID, sched.TargetScreenTypes, sched.TargetLocations,
		sched.IsActive)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", sched.ID).Msg("failed to update schedule")
		return model.Schedule{}, err
	}
	return out, nil
}

func (s *pgStore) DeleteSchedule(id int) error {
	_, err := s.db.Exec(`DELETE FROM schedules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("failed to delete schedule")
	}
	return err
}
