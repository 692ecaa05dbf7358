package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"courseplatform/services/notification-service/internal/queue"
)

type fakeCourses struct {
	name string
	err  error
}

func (f *fakeCourses) CourseName(ctx context.Context, courseID string) (string, error) {
	return f.name, f.err
}

type fakeEnrollments struct {
	users []int64
	err   error
}

func (f *fakeEnrollments) UserIDs(ctx context.Context, scheduleID string) ([]int64, error) {
	return f.users, f.err
}

type fakeChannel struct {
	delivered []int64
	failFor   map[int64]error
}

func (f *fakeChannel) Deliver(ctx context.Context, userID int64, text string) error {
	if err, ok := f.failFor[userID]; ok {
		return err
	}
	f.delivered = append(f.delivered, userID)
	return nil
}

func reminderJob(t *testing.T) queue.Job {
	t.Helper()
	payload, err := json.Marshal(ReminderPayload{ScheduleID: "sched-1", CourseID: "course-1"})
	if err != nil {
		t.Fatal(err)
	}
	return queue.Job{ID: "job-1", Type: JobTypeReminder, Payload: payload, FireAt: time.Now()}
}

func TestReminderDeliversToAllUsers(t *testing.T) {
	ch := &fakeChannel{}
	h := NewReminderHandler(
		&fakeCourses{name: "Go с нуля"},
		&fakeEnrollments{users: []int64{10, 20, 30}},
		ch,
	)

	if err := h.Handle(context.Background(), reminderJob(t)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ch.delivered) != 3 {
		t.Errorf("Expected 3 deliveries, got %d", len(ch.delivered))
	}
}

func TestReminderCourseGoneSoftFails(t *testing.T) {
	ch := &fakeChannel{}
	h := NewReminderHandler(
		&fakeCourses{err: ErrCourseGone},
		&fakeEnrollments{users: []int64{10}},
		ch,
	)

	if err := h.Handle(context.Background(), reminderJob(t)); err != nil {
		t.Fatalf("Expected soft failure to return nil, got %v", err)
	}
	if len(ch.delivered) != 0 {
		t.Errorf("Expected no deliveries for a deleted course, got %d", len(ch.delivered))
	}
}

func TestReminderLookupFailureReported(t *testing.T) {
	h := NewReminderHandler(
		&fakeCourses{name: "Курс"},
		&fakeEnrollments{err: errors.New("enrolling service down")},
		&fakeChannel{},
	)

	if err := h.Handle(context.Background(), reminderJob(t)); err == nil {
		t.Errorf("Expected lookup failure to be reported as job failure")
	}
}

func TestReminderPartialDeliveryFailure(t *testing.T) {
	ch := &fakeChannel{failFor: map[int64]error{20: errors.New("blocked by user")}}
	h := NewReminderHandler(
		&fakeCourses{name: "Курс"},
		&fakeEnrollments{users: []int64{10, 20, 30}},
		ch,
	)

	if err := h.Handle(context.Background(), reminderJob(t)); err != nil {
		t.Fatalf("Expected per-user failure not to fail the job, got %v", err)
	}
	if len(ch.delivered) != 2 {
		t.Errorf("Expected delivery to the remaining 2 users, got %d", len(ch.delivered))
	}
}

func TestReminderBadPayload(t *testing.T) {
	h := NewReminderHandler(&fakeCourses{}, &fakeEnrollments{}, &fakeChannel{})

	job := queue.Job{ID: "job-x", Type: JobTypeReminder, Payload: []byte("{broken")}
	if err := h.Handle(context.Background(), job); err == nil {
		t.Errorf("Expected error for malformed payload")
	}
}
