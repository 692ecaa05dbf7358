package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"courseplatform/services/notification-service/internal/worker"
)

// ManagementClient достаёт данные курса из management-service.
type ManagementClient struct {
	baseURL string
	http    *http.Client
}

func NewManagementClient(baseURL string) *ManagementClient {
	return &ManagementClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *ManagementClient) CourseName(ctx context.Context, courseID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/courses/"+courseID, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", worker.ErrCourseGone
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("management service responded %d", resp.StatusCode)
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Name, nil
}
