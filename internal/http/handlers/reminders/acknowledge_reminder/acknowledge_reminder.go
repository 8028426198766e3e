package acknowledgereminder

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	service "brainbox/internal/core/services/acknowledge_reminder"
	"brainbox/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MAX_SNOOZE_MINUTES caps a single snooze at one week. Longer snoozes are
// clamped, non-positive ones dismiss the reminder.
const MAX_SNOOZE_MINUTES = 7 * 24 * 60

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	ID            string `json:"id"`
	SnoozeMinutes int    `json:"snooze_minutes"`
}

type Result struct {
	OK    bool `json:"ok"`
	Found bool `json:"found"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i *Input) Normalize() {
	i.ID = strings.TrimSpace(i.ID)
	i.SnoozeMinutes = min(i.SnoozeMinutes, MAX_SNOOZE_MINUTES)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	input.Normalize()
	if input.ID == "" {
		response.Render(rw, Result{OK: true, Found: false}, http.StatusOK)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{ID: reminder.ID(input.ID), SnoozeMinutes: input.SnoozeMinutes},
	)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderDoesNotExist) {
			response.Render(rw, Result{OK: true, Found: false}, http.StatusOK)
			return
		}
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{OK: true, Found: true}, http.StatusOK)
}
