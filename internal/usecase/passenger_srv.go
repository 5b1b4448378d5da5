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

type PassengerService interface {
	CreatePassenger(ctx context.Context, req *request.CreatePassengerRequest) (*response.PassengerResponse, error)
	GetPassengerByID(ctx context.Context, passengerID string) (*response.PassengerResponse, error)
	GetPassengers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error)
	UpdatePassenger(ctx context.Context, passengerID string, req *request.UpdatePassengerRequest) (*response.PassengerResponse, error)
	DeletePassenger(ctx context.Context, passengerID string) error
}

type passengerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPassengerService(repo *repository.Repository, log *zap.Logger) PassengerService {
	return &passengerService{
		repo: repo,
		log:  log.With(zap.String("service", "passenger")),
	}
}

func (s *passengerService) CreatePassenger(ctx context.Context, req *request.CreatePassengerRequest) (*response.PassengerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create passenger validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Mobile:  req.Mobile,
		Tier:    entity.PassengerTier(req.Tier),
		Balance: req.Balance,
	}

	if err := s.repo.Passenger.Create(ctx, passenger); err != nil {
		return nil, fmt.Errorf("create passenger: %w", err)
	}

	s.log.Info("Passenger created",
		zap.String("passenger_id", passenger.ID.String()),
		zap.String("tier", req.Tier),
	)

	return response.PassengerToResponse(passenger), nil
}

func (s *passengerService) GetPassengerByID(ctx context.Context, passengerID string) (*response.PassengerResponse, error) {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger by id: %w", err)
	}
	if passenger == nil {
		return nil, &NotFoundError{Kind: "passenger", ID: passengerID}
	}

	return response.PassengerToResponse(passenger), nil
}

func (s *passengerService) GetPassengers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error) {
	passengers, err := s.repo.Passenger.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get passengers", zap.Error(err))
		return nil, fmt.Errorf("get passengers: %w", err)
	}

	total, err := s.repo.Passenger.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count passengers", zap.Error(err))
		return nil, fmt.Errorf("count passengers: %w", err)
	}

	passengerResponses := make([]response.PassengerResponse, len(passengers))
	for i, passenger := range passengers {
		passengerResponses[i] = *response.PassengerToResponse(passenger)
	}

	return response.NewPaginatedResponse(passengerResponses, req.Page, req.PerPage, total), nil
}

// UpdatePassenger changes contact fields only. Tier is fixed at creation and
// balance moves only through bookings.
func (s *passengerService) UpdatePassenger(ctx context.Context, passengerID string, req *request.UpdatePassengerRequest) (*response.PassengerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update passenger validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger by id: %w", err)
	}
	if passenger == nil {
		return nil, &NotFoundError{Kind: "passenger", ID: passengerID}
	}

	if req.Name != nil {
		passenger.Name = *req.Name
	}
	if req.Mobile != nil {
		passenger.Mobile = *req.Mobile
	}
	passenger.UpdatedAt = time.Now()

	// Column-targeted write; a concurrent booking moving the balance or the
	// booking list must not be undone by this edit's stale read.
	if err := s.repo.Passenger.UpdateContact(ctx, passenger); err != nil {
		return nil, fmt.Errorf("update passenger: %w", err)
	}

	s.log.Info("Passenger updated", zap.String("passenger_id", passengerID))

	return response.PassengerToResponse(passenger), nil
}

func (s *passengerService) DeletePassenger(ctx context.Context, passengerID string) error {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get passenger by id: %w", err)
	}
	if passenger == nil {
		return &NotFoundError{Kind: "passenger", ID: passengerID}
	}

	if err := s.repo.Passenger.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete passenger: %w", err)
	}

	return nil
}
