package exportdata

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/services"
	service "brainbox/internal/core/services/export_history"
	"brainbox/internal/http/handlers/response"
	"net/http"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.RenderRaw(rw, result.Data, http.StatusOK)
}
