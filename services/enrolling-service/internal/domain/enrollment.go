package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Enrollment — запись пользователя на конкретное расписание курса.
// UserID — идентификатор Telegram-чата, поэтому int64, а не uuid.
type Enrollment struct {
	ID         uuid.UUID
	UserID     int64
	CourseID   uuid.UUID
	ScheduleID uuid.UUID
	EnrollTime time.Time
}

var (
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this schedule")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

type EnrollmentStore interface {
	Insert(ctx context.Context, e *Enrollment) error
	ListByUser(ctx context.Context, userID int64) ([]Enrollment, error)
	UserIDsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
