package health

import (
	"brainbox/internal/http/handlers/response"
	"net/http"
)

type status struct {
	Status string `json:"status"`
}

func Health(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, status{Status: "ok"}, http.StatusOK)
}

func Root(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, status{Status: "Backend running"}, http.StatusOK)
}
