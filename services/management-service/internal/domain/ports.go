package domain

import (
	"context"

	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/dbtime"
)

// CourseTx — явная единица работы вокруг проверки имени и вставки курса.
// Проверка уникальности и вставка обязаны жить в одной транзакции,
// иначе два конкурентных создания одного имени пройдут оба.
type CourseTx interface {
	ExistsByName(name string) (bool, error)
	Insert(course *Course) error
	Commit() error
	Rollback() error
}

type CourseStore interface {
	Begin(ctx context.Context) (CourseTx, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Course, error)
	ListUpcoming(ctx context.Context) ([]Course, error)
	ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]Course, error)
	Update(ctx context.Context, id uuid.UUID, upd CourseUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScheduleStore interface {
	// Insert возвращает ErrDuplicateSchedule, если слот (course, start_date, start_time)
	// уже занят — подстраховка на случай гонки, не пойманной резолвером.
	Insert(ctx context.Context, s *ScheduleInterval) error
	StartDates(ctx context.Context, courseID uuid.UUID) ([]dbtime.Date, error)
	TimesForDate(ctx context.Context, courseID uuid.UUID, date dbtime.Date) ([]ScheduleTime, error)
	Details(ctx context.Context, scheduleID uuid.UUID) (*ScheduleDetails, error)
	RowsForCourse(ctx context.Context, courseID uuid.UUID) ([]CourseScheduleRow, error)
}

// ReminderScheduler — внешний планировщик отложенных напоминаний
// (notification-service). Его отказ не откатывает уже сохранённые данные.
type ReminderScheduler interface {
	ScheduleReminders(ctx context.Context, courseID uuid.UUID, reminders []Reminder) error
}
