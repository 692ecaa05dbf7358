package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"courseplatform/services/enrolling-service/internal/domain"
)

type EnrollmentUseCase struct {
	store domain.EnrollmentStore
	now   func() time.Time
}

func NewEnrollmentUseCase(store domain.EnrollmentStore) *EnrollmentUseCase {
	return &EnrollmentUseCase{store: store, now: time.Now}
}

func (uc *EnrollmentUseCase) Enroll(ctx context.Context, userID int64, courseID, scheduleID uuid.UUID) (*domain.Enrollment, error) {
	e := &domain.Enrollment{
		ID:         uuid.New(),
		UserID:     userID,
		CourseID:   courseID,
		ScheduleID: scheduleID,
		EnrollTime: uc.now(),
	}
	if err := uc.store.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *EnrollmentUseCase) UserEnrollments(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	return uc.store.ListByUser(ctx, userID)
}

func (uc *EnrollmentUseCase) ScheduleUserIDs(ctx context.Context, scheduleID uuid.UUID) ([]int64, error) {
	return uc.store.UserIDsBySchedule(ctx, scheduleID)
}

func (uc *EnrollmentUseCase) Unenroll(ctx context.Context, id uuid.UUID) error {
	return uc.store.Delete(ctx, id)
}
