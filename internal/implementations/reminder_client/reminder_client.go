package reminderclient

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/reminder"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxErrorBodySize = 1024

type reminderSchema struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	DueTs     string `json:"due_ts"`
	Delivered bool   `json:"delivered"`
}

type ackRequest struct {
	ID            string `json:"id"`
	SnoozeMinutes int    `json:"snooze_minutes"`
}

// Client reads due reminders from a running backend over HTTP.
type Client struct {
	httpClient http.Client
	baseURL    url.URL
}

func New(baseURL url.URL, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, httpClient: http.Client{Timeout: timeout}}
}

func (c *Client) ListDue(ctx context.Context) ([]reminder.Reminder, error) {
	u := c.baseURL.JoinPath("reminders-due")
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Add("accept", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var items []reminderSchema
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode due reminders: %w", err)
	}

	reminders := make([]reminder.Reminder, 0, len(items))
	for _, item := range items {
		dueAt, err := time.Parse(time.RFC3339Nano, item.DueTs)
		if err != nil {
			dueAt = time.Time{}
		}
		reminders = append(reminders, reminder.Reminder{
			ID:        reminder.ID(item.ID),
			Task:      item.Task,
			DueAt:     dueAt.UTC(),
			Delivered: item.Delivered,
		})
	}
	return reminders, nil
}

func (c *Client) Acknowledge(ctx context.Context, id reminder.ID, snoozeMinutes int) error {
	u := c.baseURL.JoinPath("reminders-ack")
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(ackRequest{ID: string(id), SnoozeMinutes: snoozeMinutes}); err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &body)
	if err != nil {
		return err
	}
	request.Header.Add("content-type", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return e.NewUnexpectedStatusError("BrainBox backend", resp.StatusCode, string(body))
}
