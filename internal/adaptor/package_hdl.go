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

type TravelPackageHandler struct {
	service usecase.TravelPackageService
	log     *zap.Logger
}

func NewTravelPackageHandler(service usecase.TravelPackageService, log *zap.Logger) *TravelPackageHandler {
	return &TravelPackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "travel_package")),
	}
}

// CreatePackage handles POST /api/packages
func (h *TravelPackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTravelPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create travel package")
		return
	}

	utils.ResponseCreated(w, "success", pkg)
}

// GetPackageByID handles GET /api/packages/{id}
func (h *TravelPackageHandler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	pkg, err := h.service.GetPackageByID(r.Context(), packageID)
	if err != nil {
		respondServiceError(w, h.log, err, "get travel package by ID")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// GetPackages handles GET /api/packages
func (h *TravelPackageHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	packages, err := h.service.GetPackages(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "get travel packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// UpdatePackage handles PUT /api/packages/{id}
func (h *TravelPackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	var req request.UpdateTravelPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), packageID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update travel package")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// DeletePackage handles DELETE /api/packages/{id} (admin only)
func (h *TravelPackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		respondServiceError(w, h.log, err, "delete travel package")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
