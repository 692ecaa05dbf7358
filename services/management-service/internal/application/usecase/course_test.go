package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/dbtime"
	"courseplatform/services/management-service/internal/domain"
)

type fakeCourseTx struct {
	store      *fakeCourseStore
	committed  bool
	rolledBack bool
}

func (t *fakeCourseTx) ExistsByName(name string) (bool, error) {
	_, ok := t.store.byName[name]
	return ok, nil
}

func (t *fakeCourseTx) Insert(course *domain.Course) error {
	if t.store.insertErr != nil {
		return t.store.insertErr
	}
	course.ID = uuid.New()
	t.store.byName[course.Name] = course
	return nil
}

func (t *fakeCourseTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeCourseTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeCourseStore struct {
	byName    map[string]*domain.Course
	insertErr error
	lastTx    *fakeCourseTx
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{byName: map[string]*domain.Course{}}
}

func (s *fakeCourseStore) Begin(ctx context.Context) (domain.CourseTx, error) {
	s.lastTx = &fakeCourseTx{store: s}
	return s.lastTx, nil
}

func (s *fakeCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	for _, c := range s.byName {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (s *fakeCourseStore) ListUpcoming(ctx context.Context) ([]domain.Course, error) {
	return nil, nil
}

func (s *fakeCourseStore) ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]domain.Course, error) {
	return nil, nil
}

func (s *fakeCourseStore) Update(ctx context.Context, id uuid.UUID, upd domain.CourseUpdate) error {
	return nil
}

func (s *fakeCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeScheduleStore struct {
	inserted  []domain.ScheduleInterval
	failCalls map[int]error // номер вызова (с нуля) -> ошибка
	calls     int
}

func (s *fakeScheduleStore) Insert(ctx context.Context, sched *domain.ScheduleInterval) error {
	call := s.calls
	s.calls++
	if err, ok := s.failCalls[call]; ok {
		return err
	}
	sched.ID = uuid.New()
	s.inserted = append(s.inserted, *sched)
	return nil
}

func (s *fakeScheduleStore) StartDates(ctx context.Context, courseID uuid.UUID) ([]dbtime.Date, error) {
	return nil, nil
}

func (s *fakeScheduleStore) TimesForDate(ctx context.Context, courseID uuid.UUID, date dbtime.Date) ([]domain.ScheduleTime, error) {
	return nil, nil
}

func (s *fakeScheduleStore) Details(ctx context.Context, scheduleID uuid.UUID) (*domain.ScheduleDetails, error) {
	return nil, domain.ErrScheduleNotFound
}

func (s *fakeScheduleStore) RowsForCourse(ctx context.Context, courseID uuid.UUID) ([]domain.CourseScheduleRow, error) {
	return nil, nil
}

type fakeReminderScheduler struct {
	calls     int
	courseID  uuid.UUID
	reminders []domain.Reminder
	err       error
}

func (s *fakeReminderScheduler) ScheduleReminders(ctx context.Context, courseID uuid.UUID, reminders []domain.Reminder) error {
	s.calls++
	s.courseID = courseID
	s.reminders = reminders
	return s.err
}

func mustCandidate(t *testing.T, startDate, endDate, startTime, endTime string) domain.ScheduleCandidate {
	t.Helper()
	sd, err := dbtime.ParseDate(startDate)
	if err != nil {
		t.Fatal(err)
	}
	ed, err := dbtime.ParseDate(endDate)
	if err != nil {
		t.Fatal(err)
	}
	st, err := dbtime.ParseTimeOfDay(startTime)
	if err != nil {
		t.Fatal(err)
	}
	et, err := dbtime.ParseTimeOfDay(endTime)
	if err != nil {
		t.Fatal(err)
	}
	return domain.ScheduleCandidate{StartDate: sd, EndDate: ed, StartTime: st, EndTime: et}
}

func newTestUseCase(courses *fakeCourseStore, schedules *fakeScheduleStore, reminders *fakeReminderScheduler) *CourseUseCase {
	loc := time.FixedZone("UTC+5", 5*3600)
	return NewCourseUseCase(courses, schedules, reminders, loc)
}

func TestCreateCoursePartialSuccess(t *testing.T) {
	courses := newFakeCourseStore()
	schedules := &fakeScheduleStore{}
	reminders := &fakeReminderScheduler{}
	uc := newTestUseCase(courses, schedules, reminders)

	in := CreateCourseInput{
		Name:       "Go для начинающих",
		OperatorID: uuid.New(),
		Schedules: []domain.ScheduleCandidate{
			mustCandidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
			mustCandidate(t, "2024-12-10", "2024-12-10", "11:00", "13:00"),
			mustCandidate(t, "2024-12-11", "2024-12-11", "09:00", "10:00"),
		},
	}

	res, err := uc.CreateCourse(context.Background(), in)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(res.Valid) != 2 {
		t.Errorf("Expected 2 valid schedules, got %d", len(res.Valid))
	}
	if len(res.Conflicted) != 1 {
		t.Errorf("Expected 1 conflicted schedule, got %d", len(res.Conflicted))
	}
	if res.Conflicted[0].Reason != domain.ReasonTimeConflict {
		t.Errorf("Expected reason %q, got %q", domain.ReasonTimeConflict, res.Conflicted[0].Reason)
	}
	if len(res.ScheduleIDs) != 2 {
		t.Errorf("Expected 2 persisted schedule ids, got %d", len(res.ScheduleIDs))
	}
	if res.Notifications != DispatchSent {
		t.Errorf("Expected notifications %q, got %q", DispatchSent, res.Notifications)
	}
	if reminders.calls != 1 {
		t.Errorf("Expected exactly one reminder batch, got %d calls", reminders.calls)
	}
	if len(reminders.reminders) != 2 {
		t.Errorf("Expected 2 reminders in the batch, got %d", len(reminders.reminders))
	}
	if reminders.courseID != res.CourseID {
		t.Errorf("Expected reminders for course %s, got %s", res.CourseID, reminders.courseID)
	}
}

func TestCreateCourseDuplicateName(t *testing.T) {
	courses := newFakeCourseStore()
	courses.byName["Занятый"] = &domain.Course{ID: uuid.New(), Name: "Занятый"}
	schedules := &fakeScheduleStore{}
	reminders := &fakeReminderScheduler{}
	uc := newTestUseCase(courses, schedules, reminders)

	in := CreateCourseInput{
		Name: "Занятый",
		Schedules: []domain.ScheduleCandidate{
			mustCandidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
		},
	}

	_, err := uc.CreateCourse(context.Background(), in)
	if !errors.Is(err, domain.ErrDuplicateCourse) {
		t.Fatalf("Expected ErrDuplicateCourse, got %v", err)
	}
	if !courses.lastTx.rolledBack {
		t.Errorf("Expected transaction to be rolled back")
	}
	if len(schedules.inserted) != 0 {
		t.Errorf("Expected no schedules persisted, got %d", len(schedules.inserted))
	}
	if reminders.calls != 0 {
		t.Errorf("Expected no reminder batches, got %d", reminders.calls)
	}
}

func TestCreateCourseEmptyName(t *testing.T) {
	uc := newTestUseCase(newFakeCourseStore(), &fakeScheduleStore{}, &fakeReminderScheduler{})

	_, err := uc.CreateCourse(context.Background(), CreateCourseInput{Name: "   "})
	if !errors.Is(err, domain.ErrEmptyCourseName) {
		t.Fatalf("Expected ErrEmptyCourseName, got %v", err)
	}
}

func TestCreateCourseZeroSchedules(t *testing.T) {
	courses := newFakeCourseStore()
	reminders := &fakeReminderScheduler{}
	uc := newTestUseCase(courses, &fakeScheduleStore{}, reminders)

	res, err := uc.CreateCourse(context.Background(), CreateCourseInput{Name: "Без расписания"})
	if err != nil {
		t.Fatalf("Expected structured result for zero schedules, got error %v", err)
	}
	if len(res.Valid) != 0 || len(res.Conflicted) != 0 {
		t.Errorf("Expected empty partitions, got %d valid, %d conflicted", len(res.Valid), len(res.Conflicted))
	}
	if res.Notifications != DispatchNone {
		t.Errorf("Expected notifications %q, got %q", DispatchNone, res.Notifications)
	}
	if reminders.calls != 0 {
		t.Errorf("Expected scheduler not to be called for an empty batch, got %d calls", reminders.calls)
	}
	if !courses.lastTx.committed {
		t.Errorf("Expected course transaction to be committed")
	}
}

func TestCreateCourseIntegrityDowngrade(t *testing.T) {
	courses := newFakeCourseStore()
	schedules := &fakeScheduleStore{failCalls: map[int]error{1: domain.ErrDuplicateSchedule}}
	reminders := &fakeReminderScheduler{}
	uc := newTestUseCase(courses, schedules, reminders)

	in := CreateCourseInput{
		Name: "Гонка",
		Schedules: []domain.ScheduleCandidate{
			mustCandidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
			mustCandidate(t, "2024-12-11", "2024-12-11", "10:00", "12:00"),
			mustCandidate(t, "2024-12-12", "2024-12-12", "10:00", "12:00"),
		},
	}

	res, err := uc.CreateCourse(context.Background(), in)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(res.Valid) != 2 {
		t.Errorf("Expected 2 persisted schedules, got %d", len(res.Valid))
	}
	if len(res.Conflicted) != 1 {
		t.Fatalf("Expected 1 conflicted schedule, got %d", len(res.Conflicted))
	}
	if res.Conflicted[0].Reason != domain.ReasonIntegrity {
		t.Errorf("Expected reason %q, got %q", domain.ReasonIntegrity, res.Conflicted[0].Reason)
	}
	if len(reminders.reminders) != 2 {
		t.Errorf("Expected reminders only for persisted schedules, got %d", len(reminders.reminders))
	}
}

func TestCreateCourseDispatchFailureDoesNotRollBack(t *testing.T) {
	courses := newFakeCourseStore()
	schedules := &fakeScheduleStore{}
	reminders := &fakeReminderScheduler{err: errors.New("queue unreachable")}
	uc := newTestUseCase(courses, schedules, reminders)

	in := CreateCourseInput{
		Name: "Надёжный",
		Schedules: []domain.ScheduleCandidate{
			mustCandidate(t, "2024-12-10", "2024-12-10", "10:00", "12:00"),
		},
	}

	res, err := uc.CreateCourse(context.Background(), in)
	if err != nil {
		t.Fatalf("Expected persistence to survive dispatch failure, got error %v", err)
	}
	if res.Notifications != DispatchFailed {
		t.Errorf("Expected notifications %q, got %q", DispatchFailed, res.Notifications)
	}
	if len(schedules.inserted) != 1 {
		t.Errorf("Expected schedule to stay persisted, got %d", len(schedules.inserted))
	}
}

func TestFireTime(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	uc := NewCourseUseCase(newFakeCourseStore(), &fakeScheduleStore{}, &fakeReminderScheduler{}, loc)

	date, _ := dbtime.ParseDate("2024-12-10")
	start, _ := dbtime.ParseTimeOfDay("10:00")

	got := uc.FireTime(date, start)
	want := time.Date(2024, 12, 10, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Expected fire time %v, got %v", want, got)
	}
}
