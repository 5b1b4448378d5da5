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

type DestinationService interface {
	CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error)
	GetDestinationByID(ctx context.Context, destinationID string) (*response.DestinationResponse, error)
	GetDestinationsByPackage(ctx context.Context, packageID string) ([]*response.DestinationResponse, error)
	UpdateDestination(ctx context.Context, destinationID string, req *request.UpdateDestinationRequest) (*response.DestinationResponse, error)
	DeleteDestination(ctx context.Context, destinationID string) error
}

type destinationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDestinationService(repo *repository.Repository, log *zap.Logger) DestinationService {
	return &destinationService{
		repo: repo,
		log:  log.With(zap.String("service", "destination")),
	}
}

func (s *destinationService) CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create destination validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", req.PackageID, err)
	}

	pkg, err := s.repo.TravelPackage.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("get travel package by id: %w", err)
	}
	if pkg == nil {
		return nil, &NotFoundError{Kind: "travel package", ID: req.PackageID}
	}

	now := time.Now()
	destination := &entity.Destination{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      req.Name,
		PackageID: packageID,
	}

	if err := s.repo.Destination.Create(ctx, destination); err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}

	s.log.Info("Destination created",
		zap.String("destination_id", destination.ID.String()),
		zap.String("package_id", req.PackageID),
	)

	return response.DestinationToResponse(destination), nil
}

func (s *destinationService) GetDestinationByID(ctx context.Context, destinationID string) (*response.DestinationResponse, error) {
	id, err := uuid.Parse(destinationID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination ID format %s: %w", destinationID, err)
	}

	destination, err := s.repo.Destination.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get destination by id: %w", err)
	}
	if destination == nil {
		return nil, &NotFoundError{Kind: "destination", ID: destinationID}
	}

	return response.DestinationToResponse(destination), nil
}

func (s *destinationService) GetDestinationsByPackage(ctx context.Context, packageID string) ([]*response.DestinationResponse, error) {
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

	destinations, err := s.repo.Destination.FindByPackageID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get destinations by package",
			zap.Error(err),
			zap.String("package_id", packageID),
		)
		return nil, fmt.Errorf("get destinations by package: %w", err)
	}

	destinationResponses := make([]*response.DestinationResponse, len(destinations))
	for i, destination := range destinations {
		destinationResponses[i] = response.DestinationToResponse(destination)
	}

	return destinationResponses, nil
}

func (s *destinationService) UpdateDestination(ctx context.Context, destinationID string, req *request.UpdateDestinationRequest) (*response.DestinationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update destination validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(destinationID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination ID format %s: %w", destinationID, err)
	}

	destination, err := s.repo.Destination.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get destination by id: %w", err)
	}
	if destination == nil {
		return nil, &NotFoundError{Kind: "destination", ID: destinationID}
	}

	if req.Name != nil {
		destination.Name = *req.Name
	}
	destination.UpdatedAt = time.Now()

	if err := s.repo.Destination.Update(ctx, destination); err != nil {
		return nil, fmt.Errorf("update destination: %w", err)
	}

	s.log.Info("Destination updated", zap.String("destination_id", destinationID))

	return response.DestinationToResponse(destination), nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, destinationID string) error {
	id, err := uuid.Parse(destinationID)
	if err != nil {
		return fmt.Errorf("invalid destination ID format %s: %w", destinationID, err)
	}

	destination, err := s.repo.Destination.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get destination by id: %w", err)
	}
	if destination == nil {
		return &NotFoundError{Kind: "destination", ID: destinationID}
	}

	if err := s.repo.Destination.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}

	return nil
}
