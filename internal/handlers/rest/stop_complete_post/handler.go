package stop_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fasterpost/internal/handlers/rest/dto"
	"fasterpost/internal/pkg/middlewares/auth"
	"fasterpost/internal/service/courierroute"
	"fasterpost/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, ok := auth.CourierID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	routeID := vars["id"]
	stopID := vars["stop_id"]

	routeEntity, err := h.service.CompleteStop(r.Context(), courierID, routeID, stopID)
	if err != nil {
		switch {
		case errors.Is(err, courierroute.ErrInvalidRouteID),
			errors.Is(err, courierroute.ErrInvalidStopID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, courierroute.ErrRouteNotFound),
			errors.Is(err, courierroute.ErrStopNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, courierroute.ErrRouteNotInProgress),
			errors.Is(err, courierroute.ErrStopAlreadyCompleted):
			writeError(w, http.StatusConflict, err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	routeDTO := dto.FromRoute(routeEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(dto.Error{Error: message})
}
