package domain

import "errors"

var (
	ErrEmptyCourseName   = errors.New("course name must not be empty")
	ErrDuplicateCourse   = errors.New("course with this name already exists")
	ErrCourseNotFound    = errors.New("course not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrDuplicateSchedule = errors.New("schedule slot already exists for this course")
)

// RejectReason — причина отказа для одного кандидата расписания.
// Отказы по кандидатам не фатальны и возвращаются вызывающему поимённо.
type RejectReason string

const (
	ReasonInvalidDateRange RejectReason = "End date is earlier than start date"
	ReasonTimeConflict     RejectReason = "Time conflict with an already valid schedule"
	ReasonIntegrity        RejectReason = "Database integrity error"
	ReasonStorage          RejectReason = "Storage error"
)
