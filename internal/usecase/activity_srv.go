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

type ActivityService interface {
	CreateActivity(ctx context.Context, req *request.CreateActivityRequest) (*response.ActivityResponse, error)
	GetActivityByID(ctx context.Context, activityID string) (*response.ActivityResponse, error)
	GetActivitiesByDestination(ctx context.Context, destinationID string) ([]*response.ActivityResponse, error)
	UpdateActivity(ctx context.Context, activityID string, req *request.UpdateActivityRequest) (*response.ActivityResponse, error)
	DeleteActivity(ctx context.Context, activityID string) error
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) CreateActivity(ctx context.Context, req *request.CreateActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination ID format %s: %w", req.DestinationID, err)
	}

	destination, err := s.repo.Destination.FindByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("get destination by id: %w", err)
	}
	if destination == nil {
		return nil, &NotFoundError{Kind: "destination", ID: req.DestinationID}
	}

	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		Cost:          req.Cost,
		Capacity:      req.Capacity,
		DestinationID: destinationID,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("destination_id", req.DestinationID),
		zap.Float64("cost", req.Cost),
		zap.Int("capacity", req.Capacity),
	)

	return response.ActivityToResponse(activity), nil
}

func (s *activityService) GetActivityByID(ctx context.Context, activityID string) (*response.ActivityResponse, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	if activity == nil {
		return nil, &NotFoundError{Kind: "activity", ID: activityID}
	}

	return response.ActivityToResponse(activity), nil
}

func (s *activityService) GetActivitiesByDestination(ctx context.Context, destinationID string) ([]*response.ActivityResponse, error) {
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

	activities, err := s.repo.Activity.FindByDestinationID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get activities by destination",
			zap.Error(err),
			zap.String("destination_id", destinationID),
		)
		return nil, fmt.Errorf("get activities by destination: %w", err)
	}

	activityResponses := make([]*response.ActivityResponse, len(activities))
	for i, activity := range activities {
		activityResponses[i] = response.ActivityToResponse(activity)
	}

	return activityResponses, nil
}

// UpdateActivity changes metadata and cost. Capacity is deliberately not
// updatable here; only the booking service moves it.
func (s *activityService) UpdateActivity(ctx context.Context, activityID string, req *request.UpdateActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	if activity == nil {
		return nil, &NotFoundError{Kind: "activity", ID: activityID}
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = req.Description
	}
	if req.Cost != nil {
		activity.Cost = *req.Cost
	}
	activity.UpdatedAt = time.Now()

	// Column-targeted write; a concurrent booking moving the capacity must
	// not be undone by this edit's stale read.
	if err := s.repo.Activity.UpdateDetails(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.log.Info("Activity updated", zap.String("activity_id", activityID))

	return response.ActivityToResponse(activity), nil
}

func (s *activityService) DeleteActivity(ctx context.Context, activityID string) error {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get activity by id: %w", err)
	}
	if activity == nil {
		return &NotFoundError{Kind: "activity", ID: activityID}
	}

	if err := s.repo.Activity.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	return nil
}
