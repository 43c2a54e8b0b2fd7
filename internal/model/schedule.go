package model

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
)

// Schedule is a time-bounded, scope-bounded assignment of a playlist to one
// or more screens. The date range is inclusive with an open end when EndDate
// is nil; the time-of-day range is half-open and may wrap past midnight.
type Schedule struct {
	ID             int        `db:"id" json:"id"`
	OrganizationID int        `db:"organization_id" json:"organization_id"`
	PlaylistID     int        `db:"playlist_id" json:"playlist_id"`
	Name           string     `db:"name" json:"name"`
	Priority       int        `db:"priority" json:"priority"`
	StartDate      time.Time  `db:"start_date" json:"start_date"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	StartTime      TimeOfDay  `db:"start_time" json:"start_time"`
	EndTime        TimeOfDay  `db:"end_time" json:"end_time"`
	DaysOfWeek     WeekdaySet `db:"days_of_week" json:"days_of_week"`

	// Target scope: a specific screen, a type/location audience, or neither
	// of those, which means the schedule is global for the organization.
	ScreenID          *int           `db:"screen_id" json:"screen_id,omitempty"`
	TargetScreenTypes ScreenTypeList `db:"target_screen_types" json:"target_screen_types,omitempty"`
	TargetLocations   IntList        `db:"target_locations" json:"target_locations,omitempty"`

	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Scope is the audience a schedule applies to. The absence of all target
// fields is represented explicitly as WildcardScope so matching logic can
// switch exhaustively instead of testing nil field combinations.
type Scope interface {
	isScope()
}

// ScreenScope targets a single screen by ID.
type ScreenScope struct {
	ScreenID int
}

// AudienceScope targets screens by type and/or location. An empty ScreenTypes
// slice means all types; an empty LocationIDs slice means all locations.
type AudienceScope struct {
	ScreenTypes []ScreenType
	LocationIDs []int
}

// WildcardScope matches every screen in the organization.
type WildcardScope struct{}

func (ScreenScope) isScope()   {}
func (AudienceScope) isScope() {}
func (WildcardScope) isScope() {}

// Scope derives the explicit scope variant from the stored target fields.
func (s *Schedule) Scope() Scope {
	if s.ScreenID != nil {
		return ScreenScope{ScreenID: *s.ScreenID}
	}
	if len(s.TargetScreenTypes) == 0 && len(s.TargetLocations) == 0 {
		return WildcardScope{}
	}
	return AudienceScope{
		ScreenTypes: s.TargetScreenTypes,
		LocationIDs: s.TargetLocations,
	}
}

// ScreenTypeList maps to a Postgres text[] column.
type ScreenTypeList []ScreenType

func (l *ScreenTypeList) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	out := make(ScreenTypeList, len(arr))
	for i, s := range arr {
		out[i] = ParseScreenType(s)
	}
	*l = out
	return nil
}

func (l ScreenTypeList) Value() (driver.Value, error) {
	arr := make(pq.StringArray, len(l))
	for i, t := range l {
		arr[i] = string(t)
	}
	return arr.Value()
}

// IntList maps to a Postgres integer[] column.
type IntList []int

func (l *IntList) Scan(src any) error {
	var arr pq.Int64Array
	if err := arr.Scan(src); err != nil {
		return err
	}
	out := make(IntList, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	*l = out
	return nil
}

func (l IntList) Value() (driver.Value, error) {
	arr := make(pq.Int64Array, len(l))
	for i, v := range l {
		arr[i] = int64(v)
	}
	return arr.Value()
}
