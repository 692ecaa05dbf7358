package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"courseplatform/services/management-service/internal/domain"
)

// Client — HTTP-клиент планировщика напоминаний (notification-service).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type reminderPayload struct {
	ScheduleID string    `json:"schedule_id"`
	FireAt     time.Time `json:"fire_at"`
}

type scheduleRemindersRequest struct {
	CourseID  string            `json:"course_id"`
	Reminders []reminderPayload `json:"reminders"`
}

func (c *Client) ScheduleReminders(ctx context.Context, courseID uuid.UUID, reminders []domain.Reminder) error {
	payload := scheduleRemindersRequest{
		CourseID:  courseID.String(),
		Reminders: make([]reminderPayload, 0, len(reminders)),
	}
	for _, r := range reminders {
		payload.Reminders = append(payload.Reminders, reminderPayload{
			ScheduleID: r.ScheduleID.String(),
			FireAt:     r.FireAt,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reminders", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("notification service responded %d: %s", resp.StatusCode, text)
	}
	return nil
}
