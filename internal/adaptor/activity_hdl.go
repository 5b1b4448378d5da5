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

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// CreateActivity handles POST /api/activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req request.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "success", activity)
}

// GetActivityByID handles GET /api/activities/{id}
func (h *ActivityHandler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	activity, err := h.service.GetActivityByID(r.Context(), activityID)
	if err != nil {
		respondServiceError(w, h.log, err, "get activity by ID")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// GetActivitiesByDestination handles GET /api/destinations/{id}/activities
func (h *ActivityHandler) GetActivitiesByDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	activities, err := h.service.GetActivitiesByDestination(r.Context(), destinationID)
	if err != nil {
		respondServiceError(w, h.log, err, "get activities by destination")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// UpdateActivity handles PUT /api/activities/{id}
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	var req request.UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	activity, err := h.service.UpdateActivity(r.Context(), activityID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update activity")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// DeleteActivity handles DELETE /api/activities/{id} (admin only)
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	if err := h.service.DeleteActivity(r.Context(), activityID); err != nil {
		respondServiceError(w, h.log, err, "delete activity")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
