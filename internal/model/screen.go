package model

import "time"

// ScreenType tags what kind of display a screen is. The set is open: values
// outside the known constants round-trip through ScreenTypeOther so that new
// device roles can be introduced without a rebuild.
type ScreenType string

const (
	ScreenTypeMenuBoard     ScreenType = "menu_board"
	ScreenTypeEmployeeBoard ScreenType = "employee_board"
	ScreenTypePromoBoard    ScreenType = "promo_board"
	ScreenTypeRoomCalendar  ScreenType = "room_calendar"
	ScreenTypeOther         ScreenType = "other"
)

// ParseScreenType maps a stored string onto a known type, falling back to
// ScreenTypeOther for anything unrecognized. Never fails.
func ParseScreenType(s string) ScreenType {
	switch ScreenType(s) {
	case ScreenTypeMenuBoard, ScreenTypeEmployeeBoard, ScreenTypePromoBoard, ScreenTypeRoomCalendar:
		return ScreenType(s)
	default:
		return ScreenTypeOther
	}
}

// Screen represents a display device in the system. ScreenType is immutable
// after creation; the admin update path never writes it.
type Screen struct {
	ID             int        `db:"id"              json:"id"`
	OrganizationID int        `db:"organization_id" json:"organization_id"`
	LocationID     int        `db:"location_id"     json:"location_id"`
	ScreenType     ScreenType `db:"screen_type"     json:"screen_type"`
	DeviceID       *string    `db:"device_id"       json:"device_id"`
	Name           string     `db:"name"            json:"name"`
	Paired         bool       `db:"paired"          json:"paired"`
	CreatedBy      int        `db:"created_by"      json:"created_by"`
	CreatedAt      time.Time  `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"      json:"updated_at"`
}
