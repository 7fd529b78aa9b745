package handlers

import (
	"net/http"

	"invest/src/schemas"
)

func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.HealthResponse{Status: "ok"}, http.StatusOK)
}
