package sendmessage

import (
	"brainbox/internal/core/domain/chat"
	e "brainbox/internal/core/domain/errors"
	ratelimiter "brainbox/internal/core/domain/rate_limiter"
	"brainbox/internal/core/services"
	service "brainbox/internal/core/services/send_message"
	"brainbox/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

const MAX_MESSAGE_LEN = 8000

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
	Message      string `json:"message"`
	Language     string `json:"language"`
	Mode         string `json:"mode"`
	VoiceEnabled bool   `json:"voice_enabled"`
}

type Result struct {
	Reply    string  `json:"reply"`
	AudioURL *string `json:"audio_url"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Message, validation.Required, validation.Length(1, MAX_MESSAGE_LEN)),
		validation.Field(&i.Language, validation.Length(0, 16)),
		validation.Field(&i.Mode, validation.Length(0, 32)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	mode := chat.Mode(input.Mode)
	if mode == "" {
		mode = chat.ModeDefault
	}
	result, err := h.service.Run(r.Context(), service.Input{
		Message:       input.Message,
		Language:      chat.ParseLanguage(input.Language),
		Mode:          mode,
		VoiceEnabled:  input.VoiceEnabled,
		ClientAddress: clientAddress(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{Reply: result.Reply}
	if result.AudioURL.IsPresent {
		res.AudioURL = &result.AudioURL.Value
	}
	response.Render(rw, res, http.StatusOK)
}

// clientAddress expects RemoteAddr to be already rewritten by the RealIP
// middleware when the backend runs behind a proxy.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
