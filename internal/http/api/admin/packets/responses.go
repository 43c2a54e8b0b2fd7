package packets

import (
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/scheduling"
)

type ProfileResponse struct {
	ID             int     `json:"id"`
	OrganizationID int     `json:"organization_id"`
	Email          string  `json:"email"`
	Name           *string `json:"name"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ScheduleResponse carries the stored schedule plus any lower-priority
// conflicts that were allowed through as warnings on save.
type ScheduleResponse struct {
	Schedule model.Schedule              `json:"schedule"`
	Warnings []scheduling.ConflictResult `json:"warnings,omitempty"`
}

// ConflictCheckResponse is the dry-run answer for /schedules/preview.
type ConflictCheckResponse struct {
	Conflicts []scheduling.ConflictResult `json:"conflicts"`
	// WouldBlock is true when at least one conflict is same or higher
	// priority, which a plain save would refuse.
	WouldBlock bool `json:"would_block"`
}

type PollingConfigResponse struct {
	Config model.PollingConfiguration `json:"config"`
	// PeriodsTileDay is false when the period list leaves gaps; devices
	// then get the fallback interval inside the gaps.
	PeriodsTileDay bool `json:"periods_tile_day"`
}

type ScreenResponse struct {
	ID             int     `json:"id"`
	OrganizationID int     `json:"organization_id"`
	LocationID     int     `json:"location_id"`
	ScreenType     string  `json:"screen_type"`
	DeviceID       *string `json:"device_id"`
	Name           string  `json:"name"`
	Paired         bool    `json:"paired"`
	CreatedBy      int     `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
