package db

import (
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

func (s *pgStore) GetPlaylistByID(id int) (model.Playlist, error) {
	var pl model.Playlist
	err := s.db.Get(&pl, `
		SELECT id, organization_id, name, description, created_at, updated_at, created_by
		FROM playlists
		WHERE id = $1;
	`, id)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("failed to get playlist")
		return model.Playlist{}, err
	}

	err = s.db.Select(&pl.Items, `
		SELECT id, playlist_id, name, media_type, media_url, position, duration, created_at
		FROM playlist_items
		WHERE playlist_id = $1
		ORDER BY position;
	`, id)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("failed to list playlist items")
		return model.Playlist{}, err
	}
	return pl, nil
}

func (s *pgStore) ListPlaylists(organizationID int) ([]model.Playlist, error) {
	var out []model.Playlist
	err := s.db.Select(&out, `
		SELECT id, organization_id, name, description, created_at, updated_at, created_by
		FROM playlists
		WHERE organization_id = $1
		ORDER BY id;
	`, organizationID)
	if err != nil {
		log.Error().Err(err).Int("organization_id", organizationID).Msg("failed to list playlists")
		return nil, err
	}
	return out, nil
}
