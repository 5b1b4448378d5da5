package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TravelPackageService interface {
	CreatePackage(ctx context.Context, req *request.CreateTravelPackageRequest) (*response.TravelPackageResponse, error)
	GetPackageByID(ctx context.Context, packageID string) (*response.TravelPackageResponse, error)
	GetPackages(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TravelPackageResponse], error)
	UpdatePackage(ctx context.Context, packageID string, req *request.UpdateTravelPackageRequest) (*response.TravelPackageResponse, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type travelPackageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTravelPackageService(repo *repository.Repository, log *zap.Logger) TravelPackageService {
	return &travelPackageService{
		repo: repo,
		log:  log.With(zap.String("service", "travel_package")),
	}
}

func (s *travelPackageService) CreatePackage(ctx context.Context, req *request.CreateTravelPackageRequest) (*response.TravelPackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create travel package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	pkg := &entity.TravelPackage{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}

	if err := s.repo.TravelPackage.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create travel package: %w", err)
	}

	s.log.Info("Travel package created",
		zap.String("package_id", pkg.ID.String()),
		zap.Int("capacity", req.Capacity),
	)

	return response.TravelPackageToResponse(pkg), nil
}

func (s *travelPackageService) GetPackageByID(ctx context.Context, packageID string) (*response.TravelPackageResponse, error) {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	pkg, err := s.repo.TravelPackage.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get travel package by id: %w", err)
	}
	if pkg == nil {
		return nil, &NotFoundError{Kind: "travel package", ID: packageID}
	}

	return response.TravelPackageToResponse(pkg), nil
}

func (s *travelPackageService) GetPackages(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TravelPackageResponse], error) {
	packages, err := s.repo.TravelPackage.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get travel packages", zap.Error(err))
		return nil, fmt.Errorf("get travel packages: %w", err)
	}

	total, err := s.repo.TravelPackage.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count travel packages", zap.Error(err))
		return nil, fmt.Errorf("count travel packages: %w", err)
	}

	packageResponses := make([]response.TravelPackageResponse, len(packages))
	for i, pkg := range packages {
		packageResponses[i] = *response.TravelPackageToResponse(pkg)
	}

	return response.NewPaginatedResponse(packageResponses, req.Page, req.PerPage, total), nil
}

func (s *travelPackageService) UpdatePackage(ctx context.Context, packageID string, req *request.UpdateTravelPackageRequest) (*response.TravelPackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update travel package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	pkg, err := s.repo.TravelPackage.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get travel package by id: %w", err)
	}
	if pkg == nil {
		return nil, &NotFoundError{Kind: "travel package", ID: packageID}
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = req.Description
	}
	if req.Capacity != nil {
		pkg.Capacity = *req.Capacity
	}
	pkg.UpdatedAt = time.Now()

	if err := s.repo.TravelPackage.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update travel package: %w", err)
	}

	s.log.Info("Travel package updated", zap.String("package_id", packageID))

	return response.TravelPackageToResponse(pkg), nil
}

func (s *travelPackageService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	pkg, err := s.repo.TravelPackage.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get travel package by id: %w", err)
	}
	if pkg == nil {
		return &NotFoundError{Kind: "travel package", ID: packageID}
	}

	if err := s.repo.TravelPackage.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete travel package: %w", err)
	}

	return nil
}
