package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay — время суток без даты и зоны, для колонок Postgres TIME.
type TimeOfDay struct{ time.Time }

// Date — календарная дата без времени, для колонок Postgres DATE.
type Date struct{ time.Time }

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// ParseTimeOfDay принимает "HH:MM" или "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	return t, t.parse(s)
}

func DateFrom(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate принимает "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	var d Date
	return d, d.parse(s)
}

func (t *TimeOfDay) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	parsed, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (d *Date) parse(s string) error {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// Before сравнивает только часы/минуты/секунды.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds() > other.seconds()
}

func (t TimeOfDay) seconds() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func (d Date) Before(other Date) bool {
	return d.Key() < other.Key()
}

// Key — каноничная строка даты, годится как ключ карты.
func (d Date) Key() string {
	return d.Format("2006-01-02")
}

// At собирает полный момент времени из даты и времени суток в заданной зоне.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

func (t *TimeOfDay) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = TimeOfDayFrom(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T for TimeOfDay", v)
	}
}

func (t TimeOfDay) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = DateFrom(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T for Date", v)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Format("2006-01-02"), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04:05"))
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.parse(s)
}
