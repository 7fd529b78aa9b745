package handlers

import (
	"net/http"

	"invest/src/schemas"
)

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeObject(w, r)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	client, err := h.Controller.Clients.CreateClient(r.Context(), raw)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	h.respond(w, r, client, http.StatusCreated)
}

func (h *Handler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Controller.Clients.GetAllClients(r.Context())
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	h.respond(w, r, clients, http.StatusOK)
}

func (h *Handler) GetActiveClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Controller.Clients.GetActiveClients(r.Context())
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	h.respond(w, r, clients, http.StatusOK)
}

// GetClientByID answers 200 with a null body when the client does not exist.
func (h *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	client, err := h.Controller.Clients.GetClientByID(r.Context(), id)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	h.respond(w, r, client, http.StatusOK)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.UpdateErrorMessage)
		return
	}

	raw, err := decodeObject(w, r)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.UpdateErrorMessage)
		return
	}

	client, err := h.Controller.Clients.UpdateClient(r.Context(), id, raw)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.UpdateErrorMessage)
		return
	}

	h.respond(w, r, client, http.StatusOK)
}
