package scheduling

import (
	"testing"

	"courseplatform/services/management-service/internal/dbtime"
	"courseplatform/services/management-service/internal/domain"
)

func candidate(t *testing.T, startDate, endDate, startTime, endTime string) domain.ScheduleCandidate {
	t.Helper()
	sd, err := dbtime.ParseDate(startDate)
	if err != nil {
		t.Fatalf("bad start date %q: %v", startDate, err)
	}
	ed, err := dbtime.ParseDate(endDate)
	if err != nil {
		t.Fatalf("bad end date %q: %v", endDate, err)
	}
	st, err := dbtime.ParseTimeOfDay(startTime)
	if err != nil {
		t.Fatalf("bad start time %q: %v", startTime, err)
	}
	et, err := dbtime.ParseTimeOfDay(endTime)
	if err != nil {
		t.Fatalf("bad end time %q: %v", endTime, err)
	}
	return domain.ScheduleCandidate{StartDate: sd, EndDate: ed, StartTime: st, EndTime: et}
}

func TestResolveEmpty(t *testing.T) {
	res := Resolve(nil)
	if len(res.Valid) != 0 {
		t.Errorf("Expected no valid schedules, got %d", len(res.Valid))
	}
	if len(res.Conflicted) != 0 {
		t.Errorf("Expected no conflicted schedules, got %d", len(res.Conflicted))
	}
}

func TestResolveOverlapSameDay(t *testing.T) {
	candidates := []domain.ScheduleCandidate{
		candidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
		candidate(t, "2024-12-10", "2024-12-10", "11:00", "13:00"),
		candidate(t, "2024-12-11", "2024-12-11", "09:00", "10:00"),
	}

	res := Resolve(candidates)

	if len(res.Valid) != 2 {
		t.Fatalf("Expected 2 valid schedules, got %d", len(res.Valid))
	}
	if len(res.Conflicted) != 1 {
		t.Fatalf("Expected 1 conflicted schedule, got %d", len(res.Conflicted))
	}
	if res.Conflicted[0].Reason != domain.ReasonTimeConflict {
		t.Errorf("Expected reason %q, got %q", domain.ReasonTimeConflict, res.Conflicted[0].Reason)
	}
	if res.Conflicted[0].StartTime.Hour() != 11 {
		t.Errorf("Expected the 11:00 candidate to be rejected, got %02d:00", res.Conflicted[0].StartTime.Hour())
	}
}

func TestResolveBackToBack(t *testing.T) {
	candidates := []domain.ScheduleCandidate{
		candidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
		candidate(t, "2024-12-10", "2024-12-10", "12:00", "14:00"),
	}

	res := Resolve(candidates)

	if len(res.Valid) != 2 {
		t.Errorf("Expected back-to-back intervals to both be accepted, got %d valid", len(res.Valid))
	}
	if len(res.Conflicted) != 0 {
		t.Errorf("Expected no conflicts, got %d", len(res.Conflicted))
	}
}

func TestResolveInvalidDateRange(t *testing.T) {
	candidates := []domain.ScheduleCandidate{
		candidate(t, "2024-12-10", "2024-12-09", "10:00", "12:00"),
	}

	res := Resolve(candidates)

	if len(res.Conflicted) != 1 {
		t.Fatalf("Expected 1 conflicted schedule, got %d", len(res.Conflicted))
	}
	if res.Conflicted[0].Reason != domain.ReasonInvalidDateRange {
		t.Errorf("Expected reason %q, got %q", domain.ReasonInvalidDateRange, res.Conflicted[0].Reason)
	}
}

func TestResolveInvalidRangeSkipsOccupancy(t *testing.T) {
	// Кандидат с кривыми датами не должен занимать слот: следующий на то же время проходит.
	candidates := []domain.ScheduleCandidate{
		candidate(t, "2024-12-10", "2024-12-09", "10:00", "12:00"),
		candidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
	}

	res := Resolve(candidates)

	if len(res.Valid) != 1 {
		t.Errorf("Expected 1 valid schedule, got %d", len(res.Valid))
	}
	if len(res.Conflicted) != 1 {
		t.Errorf("Expected 1 conflicted schedule, got %d", len(res.Conflicted))
	}
}

func TestResolveOrderSensitive(t *testing.T) {
	a := candidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00")
	b := candidate(t, "2024-12-10", "2024-12-10", "11:00", "13:00")

	res := Resolve([]domain.ScheduleCandidate{a, b})
	if len(res.Valid) != 1 || res.Valid[0].StartTime.Hour() != 10 {
		t.Errorf("Expected [A, B] to accept A (10:00)")
	}

	res = Resolve([]domain.ScheduleCandidate{b, a})
	if len(res.Valid) != 1 || res.Valid[0].StartTime.Hour() != 11 {
		t.Errorf("Expected [B, A] to accept B (11:00)")
	}
}

func TestResolveDifferentStartDatesNeverConflict(t *testing.T) {
	// Многодневные интервалы сравниваются только по дате начала.
	candidates := []domain.ScheduleCandidate{
		candidate(t, "2024-12-10", "2024-12-20", "10:00", "12:00"),
		candidate(t, "2024-12-11", "2024-12-19", "10:00", "12:00"),
	}

	res := Resolve(candidates)

	if len(res.Valid) != 2 {
		t.Errorf("Expected candidates with different start dates to never conflict, got %d valid", len(res.Valid))
	}
}

func TestResolveEveryCandidateAccountedFor(t *testing.T) {
	candidates := []domain.ScheduleCandidate{
		candidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
		candidate(t, "2024-12-10", "2024-12-10", "11:00", "13:00"),
		candidate(t, "2024-12-10", "2024-12-09", "08:00", "09:00"),
		candidate(t, "2024-12-12", "2024-12-12", "10:00", "11:00"),
		candidate(t, "2024-12-10", "2024-12-10", "12:00", "13:00"),
	}

	res := Resolve(candidates)

	if len(res.Valid)+len(res.Conflicted) != len(candidates) {
		t.Errorf("Expected %d candidates accounted for, got %d valid + %d conflicted",
			len(candidates), len(res.Valid), len(res.Conflicted))
	}
}
