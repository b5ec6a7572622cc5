package package_scan_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fasterpost/internal/entities"
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

	routeID := mux.Vars(r)["id"]

	var req dto.ScanPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	newStatus, err := h.service.ScanPackage(
		r.Context(),
		courierID,
		routeID,
		req.StopID,
		req.PackageID,
		entities.ScanAction(req.Action),
	)
	if err != nil {
		switch {
		case errors.Is(err, courierroute.ErrInvalidRouteID),
			errors.Is(err, courierroute.ErrInvalidStopID),
			errors.Is(err, courierroute.ErrInvalidPackageID),
			errors.Is(err, courierroute.ErrInvalidAction):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, courierroute.ErrRouteNotFound),
			errors.Is(err, courierroute.ErrStopNotFound),
			errors.Is(err, courierroute.ErrPackageNotAtStop):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, courierroute.ErrRouteNotInProgress),
			errors.Is(err, courierroute.ErrStopAlreadyCompleted):
			writeError(w, http.StatusConflict, err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	resp := dto.ScanPackageResponse{NewState: newStatus.String()}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
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
