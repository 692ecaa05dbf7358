package domain

import (
	"time"

	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/dbtime"
)

// ScheduleCandidate — ещё не сохранённый интервал расписания из запроса.
type ScheduleCandidate struct {
	StartDate dbtime.Date      `json:"start_date"`
	EndDate   dbtime.Date      `json:"end_date"`
	StartTime dbtime.TimeOfDay `json:"start_time"`
	EndTime   dbtime.TimeOfDay `json:"end_time"`
}

type ScheduleInterval struct {
	ID        uuid.UUID        `json:"id"`
	CourseID  uuid.UUID        `json:"course_id"`
	StartDate dbtime.Date      `json:"start_date"`
	EndDate   dbtime.Date      `json:"end_date"`
	StartTime dbtime.TimeOfDay `json:"start_time"`
	EndTime   dbtime.TimeOfDay `json:"end_time"`
}

// RejectedSchedule — кандидат, не прошедший проверку, с причиной отказа.
type RejectedSchedule struct {
	ScheduleCandidate
	Reason RejectReason `json:"reason"`
}

// Reminder — пара для планировщика напоминаний: какое расписание и когда напомнить.
type Reminder struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	FireAt     time.Time `json:"fire_at"`
}
