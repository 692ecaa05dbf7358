package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

// Ошибки транспорта разделены по видам: middleware бота превращает
// каждый вид в свое сообщение пользователю.
var (
	ErrTimeout    = errors.New("gateway timeout")
	ErrConnection = errors.New("gateway connection failed")
)

// StatusError — гейтвей ответил, но не 2xx.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway responded with status %d", e.Code)
}

type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

type Enrollment struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	ScheduleID string `json:"schedule_id"`
	EnrollTime string `json:"enroll_time"`
}

type ScheduleTime struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
}

type ScheduleDetails struct {
	CourseName string `json:"course_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// GatewayClient — единственная дверь бота в платформу: всё ходит через гейтвей.
type GatewayClient struct {
	baseURL string
	http    *http.Client
}

func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

func (c *GatewayClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *GatewayClient) AvailableCourses(ctx context.Context, chatID int64) ([]Course, error) {
	var courses []Course
	err := c.getJSON(ctx, "/api/v1/courses/available?user_id="+strconv.FormatInt(chatID, 10), &courses)
	return courses, err
}

func (c *GatewayClient) MyEnrollments(ctx context.Context, chatID int64) ([]Enrollment, error) {
	var body struct {
		Enrollments []Enrollment `json:"enrollments"`
	}
	err := c.getJSON(ctx, "/api/v1/enroll?user_id="+strconv.FormatInt(chatID, 10), &body)
	return body.Enrollments, err
}

func (c *GatewayClient) ScheduleDates(ctx context.Context, courseID string) ([]string, error) {
	var body struct {
		StartDate []string `json:"start_date"`
	}
	err := c.getJSON(ctx, "/api/v1/courses/"+courseID+"/schedule", &body)
	return body.StartDate, err
}

func (c *GatewayClient) TimesForDate(ctx context.Context, courseID, date string) ([]ScheduleTime, error) {
	var body struct {
		Times []ScheduleTime `json:"times"`
	}
	err := c.getJSON(ctx, "/api/v1/courses/"+courseID+"/times?date="+date, &body)
	return body.Times, err
}

func (c *GatewayClient) ScheduleDetails(ctx context.Context, scheduleID string) (*ScheduleDetails, error) {
	var details ScheduleDetails
	if err := c.getJSON(ctx, "/api/v1/schedules/"+scheduleID, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *GatewayClient) Enroll(ctx context.Context, chatID int64, courseID, scheduleID string) error {
	payload, err := json.Marshal(map[string]any{
		"user_id":     chatID,
		"course_id":   courseID,
		"schedule_id": scheduleID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/enroll", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
