package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimePeriod is a named time-of-day interval with the polling interval
// devices should use while inside it. Periods are expected to tile the full
// day; any period may wrap past midnight.
type TimePeriod struct {
	Name            string    `json:"name"`
	Start           TimeOfDay `json:"start"`
	End             TimeOfDay `json:"end"`
	IntervalSeconds int       `json:"interval_seconds"`
}

// TimePeriodList maps to a JSONB column.
type TimePeriodList []TimePeriod

func (l *TimePeriodList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into TimePeriodList", src)
	}
}

func (l TimePeriodList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// PollingConfiguration holds one organization's device polling policy.
// The emergency fields implement a timeout-bounded global override: while
// EmergencyOverride is set and the timeout has not elapsed, every device in
// the organization polls at EmergencyIntervalSeconds regardless of period.
type PollingConfiguration struct {
	OrganizationID           int            `db:"organization_id" json:"organization_id"`
	Timezone                 string         `db:"timezone" json:"timezone"`
	Periods                  TimePeriodList `db:"periods" json:"periods"`
	EmergencyOverride        bool           `db:"emergency_override" json:"emergency_override"`
	EmergencyIntervalSeconds int            `db:"emergency_interval_seconds" json:"emergency_interval_seconds"`
	EmergencyTimeoutHours    int            `db:"emergency_timeout_hours" json:"emergency_timeout_hours"`
	EmergencyStartedAt       *time.Time     `db:"emergency_started_at" json:"emergency_started_at,omitempty"`
	UpdatedAt                time.Time      `db:"updated_at" json:"updated_at"`
}
