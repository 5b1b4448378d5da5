package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	UpdateDetails(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, name, description, cost, capacity, destination_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Cost,
		activity.Capacity,
		activity.DestinationID,
		activity.CreatedAt,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("create activity %s: %w", activity.ID.String(), err)
	}

	return nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := `
		SELECT id, name, description, cost, capacity, destination_id, created_at, updated_at
		FROM activities
		WHERE id = $1
	`

	var activity entity.Activity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Cost,
		&activity.Capacity,
		&activity.DestinationID,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return &activity, nil
}

func (r *activityRepository) FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]*entity.Activity, error) {
	query := `
		SELECT id, name, description, cost, capacity, destination_id, created_at, updated_at
		FROM activities
		WHERE destination_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, destinationID)
	if err != nil {
		r.log.Error("Failed to find activities by destination ID",
			zap.Error(err),
			zap.String("destination_id", destinationID.String()),
		)
		return nil, fmt.Errorf("find activities by destination ID %s: %w", destinationID.String(), err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var activity entity.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Description,
			&activity.Cost,
			&activity.Capacity,
			&activity.DestinationID,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &activity)
	}

	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, description = $3, cost = $4, capacity = $5, destination_id = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Cost,
		activity.Capacity,
		activity.DestinationID,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("update activity %s: %w", activity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}

	return nil
}

// UpdateDetails persists name, description and cost only. Capacity is never
// written here, so a detail edit racing a booking cannot clobber the slot
// count with a stale read.
func (r *activityRepository) UpdateDetails(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, description = $3, cost = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Cost,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update activity details",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("update activity details %s: %w", activity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM activities WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return fmt.Errorf("delete activity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", id.String())
	}

	r.log.Info("Activity deleted", zap.String("activity_id", id.String()))
	return nil
}
