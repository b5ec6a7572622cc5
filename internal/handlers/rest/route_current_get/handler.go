package route_current_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fasterpost/internal/handlers/rest/dto"
	"fasterpost/internal/pkg/middlewares/auth"
	"fasterpost/internal/service/courierroute"
	"fasterpost/pkg/logger"
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

	routeEntity, err := h.service.CurrentRoute(r.Context(), courierID)
	if err != nil {
		switch {
		case errors.Is(err, courierroute.ErrNoActiveRoute):
			writeError(w, http.StatusNotFound, err.Error())
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
