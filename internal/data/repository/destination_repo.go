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

type DestinationRepository interface {
	Create(ctx context.Context, destination *entity.Destination) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error)
	FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Destination, error)
	Update(ctx context.Context, destination *entity.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type destinationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDestinationRepository(db database.PgxIface, log *zap.Logger) DestinationRepository {
	return &destinationRepository{
		db:  db,
		log: log.With(zap.String("repository", "destination")),
	}
}

func (r *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	query := `
		INSERT INTO destinations (id, name, package_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.PackageID,
		destination.CreatedAt,
		destination.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create destination",
			zap.Error(err),
			zap.String("destination_id", destination.ID.String()),
		)
		return fmt.Errorf("create destination %s: %w", destination.ID.String(), err)
	}

	return nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	query := `
		SELECT id, name, package_id, created_at, updated_at
		FROM destinations
		WHERE id = $1
	`

	var destination entity.Destination
	err := r.db.QueryRow(ctx, query, id).Scan(
		&destination.ID,
		&destination.Name,
		&destination.PackageID,
		&destination.CreatedAt,
		&destination.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find destination by ID",
			zap.Error(err),
			zap.String("destination_id", id.String()),
		)
		return nil, fmt.Errorf("find destination by ID %s: %w", id.String(), err)
	}

	return &destination, nil
}

func (r *destinationRepository) FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Destination, error) {
	query := `
		SELECT id, name, package_id, created_at, updated_at
		FROM destinations
		WHERE package_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, packageID)
	if err != nil {
		r.log.Error("Failed to find destinations by package ID",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
		)
		return nil, fmt.Errorf("find destinations by package ID %s: %w", packageID.String(), err)
	}
	defer rows.Close()

	var destinations []*entity.Destination
	for rows.Next() {
		var destination entity.Destination
		err := rows.Scan(
			&destination.ID,
			&destination.Name,
			&destination.PackageID,
			&destination.CreatedAt,
			&destination.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan destination row", zap.Error(err))
			return nil, fmt.Errorf("scan destination row: %w", err)
		}
		destinations = append(destinations, &destination)
	}

	return destinations, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *entity.Destination) error {
	query := `
		UPDATE destinations
		SET name = $2, package_id = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.PackageID,
		destination.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update destination",
			zap.Error(err),
			zap.String("destination_id", destination.ID.String()),
		)
		return fmt.Errorf("update destination %s: %w", destination.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("destination %s not found", destination.ID.String())
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM destinations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete destination",
			zap.Error(err),
			zap.String("destination_id", id.String()),
		)
		return fmt.Errorf("delete destination %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("destination %s not found", id.String())
	}

	r.log.Info("Destination deleted", zap.String("destination_id", id.String()))
	return nil
}
