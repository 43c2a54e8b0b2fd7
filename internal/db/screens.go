package db

import (
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

const screenColumns = `
	id, organization_id, location_id, screen_type, device_id, name, paired, created_by, created_at, updated_at`

func (s *pgStore) GetScreenByID(id int) (model.Screen, error) {
	var screen model.Screen
	err := s.db.Get(&screen, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE id = $1;
	`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to get screen by id")
	}
	return screen, err
}

func (s *pgStore) GetScreenByDeviceID(deviceID string) (model.Screen, error) {
	var screen model.Screen
	err := s.db.Get(&screen, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE device_id = $1;
	`, deviceID)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to get screen by device id")
	}
	return screen, err
}

func (s *pgStore) ListScreens(organizationID int) ([]model.Screen, error) {
	var screens []model.Screen
	err := s.db.Select(&screens, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE organization_id = $1
		ORDER BY id;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to list screens")
		return nil, err
	}
	return screens, nil
}

func (s *pgStore) CreateScreen(organizationID, locationID int, screenType model.ScreenType, name string, createdBy int) (model.Screen, error) {
	var screen model.Screen
	q := `
	INSERT INTO screens (organization_id, location_id, screen_type, name, paired, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, false, $5, now(), now())
	RETURNING ` + screenColumns + `;`
	if err := s.db.Get(&screen, q, organizationID, locationID, string(screenType), name, createdBy); err != nil {
		log.Error().Err(err).Msg("failed to create screen")
		return model.Screen{}, err
	}
	return screen, nil
}

// screen_type is immutable after creation, so the update path never writes it.
func (s *pgStore) UpdateScreen(id int, name *string, locationID *int) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET name = COALESCE($2, name),
		    location_id = COALESCE($3, location_id),
		    updated_at = now()
		WHERE id = $1;
	`, id, name, locationID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to update screen")
	}
	return err
}

func (s *pgStore) DeleteScreen(id int) error {
	_, err := s.db.Exec(`DELETE FROM screens WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to delete screen")
	}
	return err
}

func (s *pgStore) PairScreen(id int, deviceID string) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET device_id = $2,
		    paired = true,
		    updated_at = now()
		WHERE id = $1;
	`, id, deviceID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Str("device_id", deviceID).Msg("failed to pair screen")
	}
	return err
}
