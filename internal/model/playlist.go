package model

import "time"

type Playlist struct {
	ID             int            `db:"id"              json:"id"`
	OrganizationID int            `db:"organization_id" json:"organization_id"`
	Name           string         `db:"name"            json:"name"`
	Description    *string        `db:"description"     json:"description,omitempty"`
	CreatedAt      time.Time      `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"      json:"updated_at"`
	CreatedBy      int            `db:"created_by"      json:"created_by"`
	Items          []PlaylistItem `db:"-"               json:"items,omitempty"`
}

type PlaylistItem struct {
	ID         int       `db:"id"          json:"id"`
	PlaylistID int       `db:"playlist_id" json:"playlist_id"`
	Name       string    `db:"name"        json:"name"`
	MediaType  string    `db:"media_type"  json:"media_type"`
	MediaURL   string    `db:"media_url"   json:"media_url"`
	Position   int       `db:"position"    json:"position"`
	Duration   *int      `db:"duration"    json:"duration,omitempty"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}
