package reminderclient

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/reminder"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	baseURL, err := url.Parse(server.URL)
	require.Nil(t, err)
	return New(*baseURL, time.Second)
}

func TestListDue(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/reminders-due", r.URL.Path)
		fmt.Fprint(w, `[
			{"id": "a", "task": "remind me to stretch", "due_ts": "2024-03-10T12:01:00.123456+00:00", "delivered": false},
			{"id": "b", "task": "remind me", "due_ts": "garbage", "delivered": false}
		]`)
	})

	reminders, err := client.ListDue(context.Background())

	require.Nil(t, err)
	require.Len(t, reminders, 2)
	require.Equal(t, reminder.ID("a"), reminders[0].ID)
	require.Equal(t, "remind me to stretch", reminders[0].Task)
	require.True(t, reminders[0].DueAt.Equal(time.Date(2024, 3, 10, 12, 1, 0, 123456000, time.UTC)))
	require.True(t, reminders[1].DueAt.IsZero())
}

func TestListDueEmpty(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	reminders, err := client.ListDue(context.Background())

	require.Nil(t, err)
	require.Len(t, reminders, 0)
}

func TestListDueServerError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "boom"}`)
	})

	_, err := client.ListDue(context.Background())

	var statusErr *e.UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestListDueMalformedBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>`)
	})

	_, err := client.ListDue(context.Background())

	require.NotNil(t, err)
}

func TestAcknowledge(t *testing.T) {
	var received ackRequest
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reminders-ack", r.URL.Path)
		require.Nil(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, `{"ok": true, "found": true}`)
	})

	err := client.Acknowledge(context.Background(), "a", 5)

	require.Nil(t, err)
	require.Equal(t, ackRequest{ID: "a", SnoozeMinutes: 5}, received)
}
