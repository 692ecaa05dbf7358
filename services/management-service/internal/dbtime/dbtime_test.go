package dbtime

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("10:30")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tod.Hour() != 10 || tod.Minute() != 30 {
		t.Errorf("Expected 10:30, got %02d:%02d", tod.Hour(), tod.Minute())
	}

	tod, err = ParseTimeOfDay("23:59:59")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tod.Second() != 59 {
		t.Errorf("Expected seconds 59, got %d", tod.Second())
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Errorf("Expected error for invalid hour")
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	a, _ := ParseTimeOfDay("10:00")
	b, _ := ParseTimeOfDay("12:00")

	if !a.Before(b) {
		t.Errorf("Expected 10:00 to be before 12:00")
	}
	if a.After(b) {
		t.Errorf("Expected 10:00 not to be after 12:00")
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("Expected equal times to be neither before nor after")
	}
}

func TestDateKey(t *testing.T) {
	d, err := ParseDate("2024-12-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Key() != "2024-12-10" {
		t.Errorf("Expected key '2024-12-10', got '%s'", d.Key())
	}
}

func TestDateAt(t *testing.T) {
	d, _ := ParseDate("2024-12-10")
	tod, _ := ParseTimeOfDay("10:00")
	loc := time.FixedZone("UTC+5", 5*3600)

	at := d.At(tod, loc)
	want := time.Date(2024, 12, 10, 10, 0, 0, 0, loc)
	if !at.Equal(want) {
		t.Errorf("Expected %v, got %v", want, at)
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	tod, _ := ParseTimeOfDay("09:15")
	b, err := tod.MarshalJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(b) != `"09:15:00"` {
		t.Errorf("Expected \"09:15:00\", got %s", string(b))
	}

	var back TimeOfDay
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if back.Hour() != 9 || back.Minute() != 15 {
		t.Errorf("Expected 09:15 after round trip, got %02d:%02d", back.Hour(), back.Minute())
	}
}

func TestTimeOfDayScanValue(t *testing.T) {
	var tod TimeOfDay
	if err := tod.Scan("14:45:00"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v != "14:45:00" {
		t.Errorf("Expected '14:45:00', got '%v'", v)
	}
}
