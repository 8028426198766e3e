package deletedata

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/services"
	service "brainbox/internal/core/services/delete_data"
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
	if _, err := h.service.Run(r.Context(), service.Input{}); err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, response.OK{OK: true}, http.StatusOK)
}
