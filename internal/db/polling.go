package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

const pollingColumns = `
	organization_id, timezone, periods,
	emergency_override, emergency_interval_seconds, emergency_timeout_hours,
	emergency_started_at, updated_at`

func (s *pgStore) GetPollingConfig(organizationID int) (model.PollingConfiguration, error) {
	var cfg model.PollingConfiguration
	err := s.db.Get(&cfg, `
		SELECT `+pollingColumns+`
		FROM polling_configurations
		WHERE organization_id = $1;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to get polling config")
	}
	return cfg, err
}

// SavePollingConfig replaces the organization's timezone and period list.
// Emergency state is managed by the activate/deactivate/clear paths below and
// is deliberately not touched here.
func (s *pgStore) SavePollingConfig(cfg model.PollingConfiguration) error {
	_, err := s.db.Exec(`
		INSERT INTO polling_configurations
		  (organization_id, timezone, periods,
		   emergency_interval_seconds, emergency_timeout_hours, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (organization_id) DO UPDATE SET
		  timezone = EXCLUDED.timezone,
		  periods = EXCLUDED.periods,
		  emergency_interval_seconds = EXCLUDED.emergency_interval_seconds,
		  emergency_timeout_hours = EXCLUDED.emergency_timeout_hours,
		  updated_at = now();
	`, cfg.OrganizationID, cfg.Timezone, cfg.Periods,
		cfg.EmergencyIntervalSeconds, cfg.EmergencyTimeoutHours)
	if err != nil {
		log.Error().Err(err).Int("organization_id", cfg.OrganizationID).Msg("failed to save polling config")
	}
	return err
}

func (s *pgStore) ActivateEmergency(organizationID int, startedAt time.Time) error {
	_, err := s.db.Exec(`
		UPDATE polling_configurations
		SET emergency_override = true,
		    emergency_started_at = $2,
		    updated_at = now()
		WHERE organization_id = $1;
	`, organizationID, startedAt)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to activate emergency override")
	}
	return err
}

func (s *pgStore) DeactivateEmergency(organizationID int) error {
	_, err := s.db.Exec(`
		UPDATE polling_configurations
		SET emergency_override = false,
		    emergency_started_at = NULL,
		    updated_at = now()
		WHERE organization_id = $1;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to deactivate emergency override")
	}
	return err
}

// ClearExpiredEmergency is the compare-and-clear write behind emergency
// auto-expiry. It only clears the override if emergency_started_at still
// holds the value the resolver observed, so a clear racing with a fresh
// activation (which writes a newer timestamp) no-ops instead of silently
// cancelling it. Concurrent identical clears are idempotent.
func (s *pgStore) ClearExpiredEmergency(organizationID int, startedAt *time.Time) error {
	_, err := s.db.Exec(`
		UPDATE polling_configurations
		SET emergency_override = false,
		    emergency_started_at = NULL,
		    updated_at = now()
		WHERE organization_id = $1
		  AND emergency_override = true
		  AND emergency_started_at IS NOT DISTINCT FROM $2;
	`, organizationID, startedAt)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to clear expired emergency override")
	}
	return err
}
