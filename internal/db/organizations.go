package db

import (
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

func (s *pgStore) GetOrganization(id int) (model.Organization, error) {
	var org model.Organization
	err := s.db.Get(&org, `
		SELECT id, name, timezone, created_at, updated_at
		FROM organizations
		WHERE id = $1;
	`, id)
	if err != nil {
		log.Error().Err(err).Int("organization_id", id).Msg("failed to get organization")
	}
	return org, err
}

// lists every location in the organization across all of its districts.
func (s *pgStore) ListLocations(organizationID int) ([]model.Location, error) {
	var out []model.Location
	err := s.db.Select(&out, `
		SELECT l.id, l.district_id, l.name, l.created_at, l.updated_at
		FROM locations l
		JOIN districts d ON d.id = l.district_id
		WHERE d.organization_id = $1
		ORDER BY l.id;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to list locations")
		return nil, err
	}
	return out, nil
}
