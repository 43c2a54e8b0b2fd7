package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a bitmask of weekdays, bit i = time.Weekday(i) (Sunday = 0).
// Persisted as a small integer, exposed over JSON as day names.
type WeekdaySet uint8

// EveryDay has all seven weekday bits set.
const EveryDay WeekdaySet = 0x7F

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Overlaps reports whether the two sets share at least one day.
func (s WeekdaySet) Overlaps(o WeekdaySet) bool {
	return s&o != 0
}

func (s WeekdaySet) IsEmpty() bool { return s == 0 }

func (s WeekdaySet) Days() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, strings.ToLower(d.String()))
	}
	return strings.Join(names, ",")
}

func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

func (s *WeekdaySet) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		if v < 0 || v > int64(EveryDay) {
			return fmt.Errorf("weekday mask %d out of range", v)
		}
		*s = WeekdaySet(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", src)
	}
}

func (s WeekdaySet) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, strings.ToLower(d.String()))
	}
	return json.Marshal(names)
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out WeekdaySet
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return err
		}
		out |= 1 << uint(d)
	}
	*s = out
	return nil
}
