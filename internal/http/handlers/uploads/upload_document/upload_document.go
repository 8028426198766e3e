package uploaddocument

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/services"
	service "brainbox/internal/core/services/upload_document"
	"brainbox/internal/http/handlers/response"
	"brainbox/internal/http/handlers/uploads/form"
	"errors"
	"net/http"
)

const (
	MAX_DOCUMENT_SIZE = 20 << 20
	SUCCESS_MESSAGE   = "✅ Document uploaded"
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
	Message  string `json:"message"`
	Analysis string `json:"analysis"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	file, header, err := form.File(rw, r, MAX_DOCUMENT_SIZE)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.service.Run(r.Context(), service.Input{Filename: header.Filename, Content: file})
	if err != nil {
		switch {
		case errors.Is(err, knowledge.ErrUnsupportedDocumentType):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderError(rw, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	response.Render(rw, Result{Message: SUCCESS_MESSAGE, Analysis: result.Analysis}, http.StatusOK)
}
