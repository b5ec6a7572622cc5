package routes_get

import (
	"encoding/json"
	"net/http"

	"fasterpost/internal/handlers/rest/dto"
	"fasterpost/internal/pkg/middlewares/auth"
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

	routes, err := h.service.ListRoutes(r.Context(), courierID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	routeDTOs := dto.FromRouteList(routes)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
