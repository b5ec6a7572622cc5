package route_finish_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fasterpost/internal/handlers/rest/dto"
	"fasterpost/internal/pkg/middlewares/auth"
	"fasterpost/internal/service/courierroute"
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

	routeID := mux.Vars(r)["id"]

	err := h.service.FinishRoute(r.Context(), courierID, routeID)
	if err != nil {
		switch {
		case errors.Is(err, courierroute.ErrInvalidRouteID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, courierroute.ErrRouteNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, courierroute.ErrRouteNotInProgress),
			errors.Is(err, courierroute.ErrRouteHasIncompleteStops):
			writeError(w, http.StatusConflict, err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(dto.Error{Error: message})
}
