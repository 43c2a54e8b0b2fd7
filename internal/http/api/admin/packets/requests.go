package packets

// body for registering
type SignupRequest struct {
	OrganizationID int     `json:"organization_id" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Name           *string `json:"name"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// body for creating or replacing a schedule. Times are "HH:MM", dates
// "YYYY-MM-DD", days of week lowercase day names. Target fields follow the
// scope rules: screen_id pins one screen, otherwise screen types and/or
// locations narrow the audience, and leaving all three empty makes the
// schedule global for the organization.
type ScheduleRequest struct {
	PlaylistID        int      `json:"playlist_id" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	Priority          int      `json:"priority"`
	StartDate         string   `json:"start_date" binding:"required"`
	EndDate           *string  `json:"end_date"`
	StartTime         string   `json:"start_time" binding:"required"`
	EndTime           string   `json:"end_time" binding:"required"`
	DaysOfWeek        []string `json:"days_of_week" binding:"required,min=1"`
	ScreenID          *int     `json:"screen_id"`
	TargetScreenTypes []string `json:"target_screen_types"`
	TargetLocations   []int    `json:"target_locations"`
	IsActive          *bool    `json:"is_active"`
}

type TimePeriodRequest struct {
	Name            string `json:"name" binding:"required"`
	Start           string `json:"start" binding:"required"`
	End             string `json:"end" binding:"required"`
	IntervalSeconds int    `json:"interval_seconds" binding:"required,min=1"`
}

type UpdatePollingConfigRequest struct {
	Timezone                 string              `json:"timezone" binding:"required"`
	Periods                  []TimePeriodRequest `json:"periods" binding:"required,min=1,dive"`
	EmergencyIntervalSeconds int                 `json:"emergency_interval_seconds" binding:"required,min=1"`
	EmergencyTimeoutHours    int                 `json:"emergency_timeout_hours" binding:"required,min=1"`
}

type CreateScreenRequest struct {
	LocationID int    `json:"location_id" binding:"required"`
	ScreenType string `json:"screen_type" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

type UpdateScreenRequest struct {
	Name       *string `json:"name"`
	LocationID *int    `json:"location_id"`
}
