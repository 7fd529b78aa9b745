package handlers

import (
	"net/http"

	"invest/src/schemas"
)

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeObject(w, r)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	asset, err := h.Controller.Assets.CreateAsset(r.Context(), raw)
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Controller.Assets.GetAllAssets(r.Context())
	if err != nil {
		h.HandleErrors(w, r, err, schemas.InternalErrorMessage)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}
