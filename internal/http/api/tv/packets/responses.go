package packets

import "github.com/JasonLazzuri/Mesophy-sub003/internal/model"

// CurrentContentResponse is the full answer to a device check-in: what to
// play and how soon to ask again. schedule fields are null when no schedule
// matches and the device should show its idle/default playlist.
//
// interval_seconds, is_emergency and period_name are the wire contract the
// device polling loop depends on; period_name is "emergency" during an
// override and "fallback" when the polling configuration is defective.
type CurrentContentResponse struct {
	ScreenID   int    `json:"screen_id"`
	ScreenName string `json:"screen_name"`

	ScheduleID   *int            `json:"schedule_id"`
	ScheduleName *string         `json:"schedule_name"`
	Playlist     *model.Playlist `json:"playlist"`

	IntervalSeconds int    `json:"interval_seconds"`
	IsEmergency     bool   `json:"is_emergency"`
	PeriodName      string `json:"period_name"`
}

type PairResponse struct {
	ScreenID int    `json:"screen_id"`
	DeviceID string `json:"device_id"`
	Paired   bool   `json:"paired"`
}
