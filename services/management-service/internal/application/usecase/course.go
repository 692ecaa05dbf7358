package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/dbtime"
	"courseplatform/services/management-service/internal/domain"
	"courseplatform/services/management-service/internal/scheduling"
)

// Напоминание уходит за час до начала занятия.
const ReminderLead = time.Hour

// Итог отправки напоминаний. Курс и расписания к этому моменту уже сохранены,
// так что провал диспетчеризации — отдельный флаг, а не ошибка всего запроса.
const (
	DispatchSent   = "Sent successfully"
	DispatchNone   = "No reminders scheduled"
	DispatchFailed = "Failed to schedule reminders"
)

type CourseUseCase struct {
	courses   domain.CourseStore
	schedules domain.ScheduleStore
	reminders domain.ReminderScheduler
	loc       *time.Location
}

func NewCourseUseCase(
	courses domain.CourseStore,
	schedules domain.ScheduleStore,
	reminders domain.ReminderScheduler,
	loc *time.Location,
) *CourseUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CourseUseCase{
		courses:   courses,
		schedules: schedules,
		reminders: reminders,
		loc:       loc,
	}
}

type CreateCourseInput struct {
	Name        string
	Description string
	Price       int
	OperatorID  uuid.UUID
	Schedules   []domain.ScheduleCandidate
}

// CreateCourseResult — поимённый разбор запроса: что сохранили, что и почему
// отклонили, дошли ли напоминания до планировщика.
type CreateCourseResult struct {
	Message       string                    `json:"message"`
	CourseID      uuid.UUID                 `json:"course_id"`
	Valid         []domain.ScheduleInterval `json:"valid_schedules"`
	Conflicted    []domain.RejectedSchedule `json:"conflicted_schedules"`
	ScheduleIDs   []uuid.UUID               `json:"schedule_ids"`
	Notifications string                    `json:"notifications"`
}

// CreateCourse — оркестратор создания курса: курс в транзакции, потом резолвер
// по пачке кандидатов, потом вставка прошедших и одна пачка напоминаний.
func (uc *CourseUseCase) CreateCourse(ctx context.Context, in CreateCourseInput) (*CreateCourseResult, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrEmptyCourseName
	}

	course, err := uc.insertCourse(ctx, in)
	if err != nil {
		return nil, err
	}

	// Курс новый, занятости в БД у него нет — пачка проверяется только сама против себя.
	resolved := scheduling.Resolve(in.Schedules)

	valid := make([]domain.ScheduleInterval, 0, len(resolved.Valid))
	scheduleIDs := make([]uuid.UUID, 0, len(resolved.Valid))
	conflicted := resolved.Conflicted

	for _, cand := range resolved.Valid {
		s := &domain.ScheduleInterval{
			CourseID:  course.ID,
			StartDate: cand.StartDate,
			EndDate:   cand.EndDate,
			StartTime: cand.StartTime,
			EndTime:   cand.EndTime,
		}

		if err := uc.schedules.Insert(ctx, s); err != nil {
			// Отказ по одному слоту не роняет остальные.
			reason := domain.ReasonStorage
			if errors.Is(err, domain.ErrDuplicateSchedule) {
				reason = domain.ReasonIntegrity
			}
			log.Printf("schedule insert for course %s rejected: %v", course.ID, err)
			conflicted = append(conflicted, domain.RejectedSchedule{
				ScheduleCandidate: cand,
				Reason:            reason,
			})
			continue
		}

		valid = append(valid, *s)
		scheduleIDs = append(scheduleIDs, s.ID)
	}

	notifications := DispatchNone
	if len(valid) > 0 {
		reminders := make([]domain.Reminder, 0, len(valid))
		for _, s := range valid {
			reminders = append(reminders, domain.Reminder{
				ScheduleID: s.ID,
				FireAt:     uc.FireTime(s.StartDate, s.StartTime),
			})
		}

		// Данные уже сохранены; отказ планировщика ничего не откатывает.
		if err := uc.reminders.ScheduleReminders(ctx, course.ID, reminders); err != nil {
			log.Printf("failed to schedule reminders for course %s: %v", course.ID, err)
			notifications = DispatchFailed
		} else {
			notifications = DispatchSent
		}
	}

	return &CreateCourseResult{
		Message:       "Course and schedules processed successfully",
		CourseID:      course.ID,
		Valid:         valid,
		Conflicted:    conflicted,
		ScheduleIDs:   scheduleIDs,
		Notifications: notifications,
	}, nil
}

func (uc *CourseUseCase) insertCourse(ctx context.Context, in CreateCourseInput) (*domain.Course, error) {
	tx, err := uc.courses.Begin(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := tx.ExistsByName(in.Name)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if exists {
		_ = tx.Rollback()
		return nil, domain.ErrDuplicateCourse
	}

	course := &domain.Course{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		OperatorID:  in.OperatorID,
	}
	if err := tx.Insert(course); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return course, nil
}

// FireTime — момент срабатывания напоминания: начало занятия минус час.
func (uc *CourseUseCase) FireTime(date dbtime.Date, start dbtime.TimeOfDay) time.Time {
	return date.At(start, uc.loc).Add(-ReminderLead)
}

func (uc *CourseUseCase) ListUpcoming(ctx context.Context) ([]domain.Course, error) {
	return uc.courses.ListUpcoming(ctx)
}

func (uc *CourseUseCase) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return uc.courses.GetByID(ctx, id)
}

func (uc *CourseUseCase) ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]domain.Course, error) {
	return uc.courses.ListByOperator(ctx, operatorID)
}

func (uc *CourseUseCase) UpdateCourse(ctx context.Context, id uuid.UUID, upd domain.CourseUpdate) error {
	return uc.courses.Update(ctx, id, upd)
}

// DeleteCourse удаляет курс; расписания и записи уходят каскадом в БД.
// Уже поставленные в очередь напоминания не отзываются — воркер при
// срабатывании увидит, что курса нет, и тихо завершится.
func (uc *CourseUseCase) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return uc.courses.Delete(ctx, id)
}

func (uc *CourseUseCase) ScheduleDates(ctx context.Context, courseID uuid.UUID) ([]dbtime.Date, error) {
	return uc.schedules.StartDates(ctx, courseID)
}

func (uc *CourseUseCase) TimesForDate(ctx context.Context, courseID uuid.UUID, date dbtime.Date) ([]domain.ScheduleTime, error) {
	return uc.schedules.TimesForDate(ctx, courseID, date)
}

func (uc *CourseUseCase) ScheduleDetails(ctx context.Context, scheduleID uuid.UUID) (*domain.ScheduleDetails, error) {
	return uc.schedules.Details(ctx, scheduleID)
}

func (uc *CourseUseCase) OperatorSchedule(ctx context.Context, courseID uuid.UUID) ([]domain.CourseScheduleRow, error) {
	return uc.schedules.RowsForCourse(ctx, courseID)
}
