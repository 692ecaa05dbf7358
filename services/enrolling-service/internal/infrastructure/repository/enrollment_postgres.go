package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseplatform/services/enrolling-service/internal/domain"
)

// EnrollmentGorm — модель таблицы записей. Пара (user_id, schedule_id)
// уникальна: на одно расписание дважды не записаться.
type EnrollmentGorm struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_user_schedule"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_schedule;index"`
	EnrollTime time.Time `gorm:"not null"`
}

func (EnrollmentGorm) TableName() string {
	return "enrollment"
}

func toDomain(m *EnrollmentGorm) *domain.Enrollment {
	return &domain.Enrollment{
		ID:         m.ID,
		UserID:     m.UserID,
		CourseID:   m.CourseID,
		ScheduleID: m.ScheduleID,
		EnrollTime: m.EnrollTime,
	}
}

func toGorm(e *domain.Enrollment) *EnrollmentGorm {
	return &EnrollmentGorm{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		ScheduleID: e.ScheduleID,
		EnrollTime: e.EnrollTime,
	}
}

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Insert(ctx context.Context, e *domain.Enrollment) error {
	err := r.db.WithContext(ctx).Create(toGorm(e)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyEnrolled
	}
	return err
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	var models []EnrollmentGorm
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enroll_time desc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	enrollments := make([]domain.Enrollment, 0, len(models))
	for i := range models {
		enrollments = append(enrollments, *toDomain(&models[i]))
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) UserIDsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&EnrollmentGorm{}).
		Where("schedule_id = ?", scheduleID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&EnrollmentGorm{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}
