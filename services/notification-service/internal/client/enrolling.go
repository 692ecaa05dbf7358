package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EnrollingClient отдаёт список записанных на расписание пользователей.
type EnrollingClient struct {
	baseURL string
	http    *http.Client
}

func NewEnrollingClient(baseURL string) *EnrollingClient {
	return &EnrollingClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *EnrollingClient) UserIDs(ctx context.Context, scheduleID string) ([]int64, error) {
	url := c.baseURL + "/schedules/" + scheduleID + "/users"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrolling service responded %d", resp.StatusCode)
	}

	var body struct {
		UserIDs []int64 `json:"user_ids"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.UserIDs, nil
}
