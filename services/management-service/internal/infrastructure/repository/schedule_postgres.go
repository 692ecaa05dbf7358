package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseplatform/services/management-service/internal/dbtime"
	"courseplatform/services/management-service/internal/domain"
)

type ScheduleGorm struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_course_slot"`
	StartDate dbtime.Date      `gorm:"type:date;not null;uniqueIndex:idx_course_slot"`
	EndDate   dbtime.Date      `gorm:"type:date;not null"`
	StartTime dbtime.TimeOfDay `gorm:"type:time;not null;uniqueIndex:idx_course_slot"`
	EndTime   dbtime.TimeOfDay `gorm:"type:time;not null"`
}

func (ScheduleGorm) TableName() string {
	return "schedule_course"
}

func toDomainSchedule(g *ScheduleGorm) *domain.ScheduleInterval {
	return &domain.ScheduleInterval{
		ID:        g.ID,
		CourseID:  g.CourseID,
		StartDate: g.StartDate,
		EndDate:   g.EndDate,
		StartTime: g.StartTime,
		EndTime:   g.EndTime,
	}
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Insert(ctx context.Context, s *domain.ScheduleInterval) error {
	g := &ScheduleGorm{
		ID:        s.ID,
		CourseID:  s.CourseID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		// Композитный индекс (course_id, start_date, start_time) ловит гонку,
		// которую резолвер в рамках одной пачки увидеть не мог.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateSchedule
		}
		return err
	}

	s.ID = g.ID
	return nil
}

func (r *ScheduleRepository) StartDates(ctx context.Context, courseID uuid.UUID) ([]dbtime.Date, error) {
	var dates []dbtime.Date
	err := r.db.WithContext(ctx).
		Model(&ScheduleGorm{}).
		Distinct("start_date").
		Where("course_id = ?", courseID).
		Order("start_date").
		Pluck("start_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *ScheduleRepository) TimesForDate(ctx context.Context, courseID uuid.UUID, date dbtime.Date) ([]domain.ScheduleTime, error) {
	var rows []ScheduleGorm
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND start_date = ?", courseID, date).
		Order("start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	times := make([]domain.ScheduleTime, 0, len(rows))
	for _, row := range rows {
		times = append(times, domain.ScheduleTime{ID: row.ID, StartTime: row.StartTime})
	}
	return times, nil
}

func (r *ScheduleRepository) Details(ctx context.Context, scheduleID uuid.UUID) (*domain.ScheduleDetails, error) {
	var row struct {
		CourseName string
		StartDate  dbtime.Date
		EndDate    dbtime.Date
		StartTime  dbtime.TimeOfDay
		EndTime    dbtime.TimeOfDay
	}

	err := r.db.WithContext(ctx).
		Model(&ScheduleGorm{}).
		Select("course.name AS course_name, schedule_course.start_date, schedule_course.end_date, schedule_course.start_time, schedule_course.end_time").
		Joins("JOIN course ON course.id = schedule_course.course_id").
		Where("schedule_course.id = ?", scheduleID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	return &domain.ScheduleDetails{
		CourseName: row.CourseName,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		StartTime:  row.StartTime,
		EndTime:    row.EndTime,
	}, nil
}

func (r *ScheduleRepository) RowsForCourse(ctx context.Context, courseID uuid.UUID) ([]domain.CourseScheduleRow, error) {
	var rows []struct {
		CourseName string
		StartDate  dbtime.Date
		EndDate    dbtime.Date
	}

	err := r.db.WithContext(ctx).
		Model(&ScheduleGorm{}).
		Select("course.name AS course_name, schedule_course.start_date, schedule_course.end_date").
		Joins("JOIN course ON course.id = schedule_course.course_id").
		Where("schedule_course.course_id = ?", courseID).
		Order("schedule_course.start_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.CourseScheduleRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CourseScheduleRow{
			CourseName: row.CourseName,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
		})
	}
	return out, nil
}
