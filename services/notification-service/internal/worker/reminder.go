package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"courseplatform/services/notification-service/internal/queue"
)

// Тип задания напоминания в очереди.
const JobTypeReminder = "send_course_reminder"

var ErrCourseGone = errors.New("course no longer exists")

// ReminderPayload — всё, что несёт отложенное задание: по этим двум id
// воркер в момент срабатывания восстанавливает остальное из сервисов.
type ReminderPayload struct {
	ScheduleID string `json:"schedule_id"`
	CourseID   string `json:"course_id"`
}

// CourseDirectory отдаёт название курса; возвращает ErrCourseGone,
// если курс успели удалить, пока задание лежало в очереди.
type CourseDirectory interface {
	CourseName(ctx context.Context, courseID string) (string, error)
}

type EnrollmentDirectory interface {
	UserIDs(ctx context.Context, scheduleID string) ([]int64, error)
}

// Channel — канал доставки уведомлений, по одному получателю за вызов.
type Channel interface {
	Deliver(ctx context.Context, userID int64, text string) error
}

type ReminderHandler struct {
	courses     CourseDirectory
	enrollments EnrollmentDirectory
	channel     Channel
}

func NewReminderHandler(courses CourseDirectory, enrollments EnrollmentDirectory, channel Channel) *ReminderHandler {
	return &ReminderHandler{courses: courses, enrollments: enrollments, channel: channel}
}

// Handle выполняет одно напоминание. Провал стартовых выборок — отказ задания
// с причиной; провал доставки одному получателю — только запись в лог.
func (h *ReminderHandler) Handle(ctx context.Context, job queue.Job) error {
	var payload ReminderPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("bad reminder payload: %w", err)
	}

	name, err := h.courses.CourseName(ctx, payload.CourseID)
	if err != nil {
		if errors.Is(err, ErrCourseGone) {
			// Курс удалили после постановки задания — мягко завершаемся.
			log.Printf("reminder %s: course %s is gone, nothing to send", job.ID, payload.CourseID)
			return nil
		}
		return fmt.Errorf("course lookup for %s: %w", payload.CourseID, err)
	}

	userIDs, err := h.enrollments.UserIDs(ctx, payload.ScheduleID)
	if err != nil {
		return fmt.Errorf("enrollment lookup for schedule %s: %w", payload.ScheduleID, err)
	}

	text := fmt.Sprintf("Напоминание: курс «%s» начнётся через час!", name)
	for _, userID := range userIDs {
		if err := h.channel.Deliver(ctx, userID, text); err != nil {
			log.Printf("reminder %s: delivery to user %d failed: %v", job.ID, userID, err)
		}
	}
	return nil
}
