package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"invest/src/api/controllers"
	"invest/src/repositories"
	"invest/src/schemas"
	"invest/src/utils"
	"invest/src/validation"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Controller *controllers.Controller
}

func NewHandler(clientRepo repositories.ClientRepository, assetRepo repositories.AssetRepository) *Handler {
	return &Handler{Controller: controllers.NewController(clientRepo, assetRepo)}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps controller errors to responses. internalMessage is the only
// thing a caller learns about a store failure; the cause is logged.
func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error, internalMessage string) {
	logger := utils.LoggerFromContext(r.Context())

	var violations validation.Violations
	var conflict *repositories.ConflictError
	switch {
	case errors.As(err, &violations):
		logger.WithField("fields", violations.Fields()).Info("request rejected by validation")
		h.respond(w, r, schemas.IssuesResponse{Issues: violations}, http.StatusBadRequest)
	case errors.As(err, &conflict):
		logger.WithField("field", conflict.Field).Warn("request rejected by unique constraint")
		utils.WriteError(w, utils.Conflict(conflict.Message))
	case errors.Is(err, repositories.ErrNotFound):
		// Writes to a missing row fail like any other store failure.
		logger.WithError(err).Warn("request targets a missing entity")
		utils.WriteError(w, utils.InternalServerError(internalMessage))
	default:
		entry := logger.WithError(err)
		var storeErr *repositories.StoreError
		if errors.As(err, &storeErr) {
			entry = entry.WithField("op", storeErr.Op).WithField("entity", storeErr.Entity)
		}
		entry.Error("request failed")
		utils.WriteError(w, utils.InternalServerError(internalMessage))
	}
}

// decodeObject reads a JSON object body. Numbers are kept as json.Number so
// amounts reach the validator without float rounding.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil || raw == nil {
		return nil, validation.Violations{validation.At(schemas.InvalidBodyMessage)}
	}
	return raw, nil
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, validation.Violations{validation.At(schemas.InvalidIDMessage, "id")}
	}
	return id, nil
}
