package domain

import (
	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/dbtime"
)

// ScheduleTime — доступное время начала на конкретную дату.
type ScheduleTime struct {
	ID        uuid.UUID        `json:"id"`
	StartTime dbtime.TimeOfDay `json:"start_time"`
}

// ScheduleDetails — расписание вместе с названием курса (join по course).
type ScheduleDetails struct {
	CourseName string           `json:"course_name"`
	StartDate  dbtime.Date      `json:"start_date"`
	EndDate    dbtime.Date      `json:"end_date"`
	StartTime  dbtime.TimeOfDay `json:"start_time"`
	EndTime    dbtime.TimeOfDay `json:"end_time"`
}

// CourseScheduleRow — строка расписания курса для кабинета оператора.
type CourseScheduleRow struct {
	CourseName string      `json:"course_name"`
	StartDate  dbtime.Date `json:"start_date"`
	EndDate    dbtime.Date `json:"end_date"`
}
