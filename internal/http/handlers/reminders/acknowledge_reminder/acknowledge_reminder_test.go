package acknowledgereminder

import (
	"brainbox/internal/core/domain/reminder"
	service "brainbox/internal/core/services/acknowledge_reminder"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Reminder = reminder.Reminder{ID: input.ID}
	return result, nil
}

func TestAcknowledgeReminderHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
		expectedInput  *service.Input
	}{
		{
			id:             "ack",
			body:           `{"id": "r1"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": true}`,
			expectedInput:  &service.Input{ID: "r1"},
		},
		{
			id:             "snooze",
			body:           `{"id": "r1", "snooze_minutes": 10}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": true}`,
			expectedInput:  &service.Input{ID: "r1", SnoozeMinutes: 10},
		},
		{
			id:             "unknown id",
			body:           `{"id": "missing", "snooze_minutes": 0}`,
			serviceErr:     reminder.ErrReminderDoesNotExist,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": false}`,
			expectedInput:  &service.Input{ID: "missing"},
		},
		{
			id:             "service error",
			body:           `{"id": "r1"}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "internal error"}`,
			expectedInput:  &service.Input{ID: "r1"},
		},
		{
			id:             "negative snooze dismisses",
			body:           `{"id": "r1", "snooze_minutes": -5}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": true}`,
			expectedInput:  &service.Input{ID: "r1", SnoozeMinutes: -5},
		},
		{
			id:             "snooze above a week is clamped",
			body:           `{"id": "r1", "snooze_minutes": 20000}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": true}`,
			expectedInput:  &service.Input{ID: "r1", SnoozeMinutes: MAX_SNOOZE_MINUTES},
		},
		{
			id:             "id is trimmed",
			body:           `{"id": "  r1 "}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": true}`,
			expectedInput:  &service.Input{ID: "r1"},
		},
		{
			id:             "empty body",
			body:           `{}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": false}`,
		},
		{
			id:             "missing id",
			body:           `{"snooze_minutes": 5}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": false}`,
		},
		{
			id:             "blank id",
			body:           `{"id": "   "}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok": true, "found": false}`,
		},
		{
			id:             "malformed body",
			body:           `{"id":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid request data"}`,
		},
	}
	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			svc := &stubService{err: testCase.serviceErr}
			handler := New(svc)
			req := httptest.NewRequest(http.MethodPost, "/reminders-ack", strings.NewReader(testCase.body))
			rw := httptest.NewRecorder()

			handler.ServeHTTP(rw, req)

			assert.Equal(t, testCase.expectedStatus, rw.Code)
			assert.JSONEq(t, testCase.expectedBody, rw.Body.String())
			assert.Equal(t, testCase.expectedInput, svc.input)
		})
	}
}
