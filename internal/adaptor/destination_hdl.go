package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DestinationHandler struct {
	service usecase.DestinationService
	log     *zap.Logger
}

func NewDestinationHandler(service usecase.DestinationService, log *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		service: service,
		log:     log.With(zap.String("handler", "destination")),
	}
}

// CreateDestination handles POST /api/destinations
func (h *DestinationHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	destination, err := h.service.CreateDestination(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create destination")
		return
	}

	utils.ResponseCreated(w, "success", destination)
}

// GetDestinationByID handles GET /api/destinations/{id}
func (h *DestinationHandler) GetDestinationByID(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	destination, err := h.service.GetDestinationByID(r.Context(), destinationID)
	if err != nil {
		respondServiceError(w, h.log, err, "get destination by ID")
		return
	}

	utils.ResponseSuccess(w, "success", destination)
}

// GetDestinationsByPackage handles GET /api/packages/{id}/destinations
func (h *DestinationHandler) GetDestinationsByPackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	destinations, err := h.service.GetDestinationsByPackage(r.Context(), packageID)
	if err != nil {
		respondServiceError(w, h.log, err, "get destinations by package")
		return
	}

	utils.ResponseSuccess(w, "success", destinations)
}

// UpdateDestination handles PUT /api/destinations/{id}
func (h *DestinationHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	var req request.UpdateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	destination, err := h.service.UpdateDestination(r.Context(), destinationID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update destination")
		return
	}

	utils.ResponseSuccess(w, "success", destination)
}

// DeleteDestination handles DELETE /api/destinations/{id} (admin only)
func (h *DestinationHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	if err := h.service.DeleteDestination(r.Context(), destinationID); err != nil {
		respondServiceError(w, h.log, err, "delete destination")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
