package uploadimage

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/services"
	service "brainbox/internal/core/services/upload_image"
	"brainbox/internal/http/handlers/response"
	"brainbox/internal/http/handlers/uploads/form"
	"errors"
	"net/http"
)

const (
	MAX_IMAGE_SIZE  = 10 << 20
	SUCCESS_MESSAGE = "✅ Image processed"
)

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

type Result struct {
	Message string `json:"message"`
	OCRText string `json:"ocr_text"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	file, _, err := form.File(rw, r, MAX_IMAGE_SIZE)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.service.Run(r.Context(), service.Input{Content: file})
	if err != nil {
		switch {
		case errors.Is(err, knowledge.ErrInvalidImage):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderError(rw, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	response.Render(rw, Result{Message: SUCCESS_MESSAGE, OCRText: result.OCRText}, http.StatusOK)
}
