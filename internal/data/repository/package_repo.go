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

type TravelPackageRepository interface {
	Create(ctx context.Context, pkg *entity.TravelPackage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TravelPackage, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TravelPackage, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, pkg *entity.TravelPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelPackageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTravelPackageRepository(db database.PgxIface, log *zap.Logger) TravelPackageRepository {
	return &travelPackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "travel_package")),
	}
}

func (r *travelPackageRepository) Create(ctx context.Context, pkg *entity.TravelPackage) error {
	query := `
		INSERT INTO travel_packages (id, name, description, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Capacity,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create travel package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("create travel package %s: %w", pkg.ID.String(), err)
	}

	return nil
}

func (r *travelPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TravelPackage, error) {
	query := `
		SELECT id, name, description, capacity, created_at, updated_at
		FROM travel_packages
		WHERE id = $1
	`

	var pkg entity.TravelPackage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Capacity,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find travel package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find travel package by ID %s: %w", id.String(), err)
	}

	return &pkg, nil
}

func (r *travelPackageRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TravelPackage, error) {
	query := `
		SELECT id, name, description, capacity, created_at, updated_at
		FROM travel_packages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find travel packages",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find travel packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.TravelPackage
	for rows.Next() {
		var pkg entity.TravelPackage
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Description,
			&pkg.Capacity,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan travel package row", zap.Error(err))
			return nil, fmt.Errorf("scan travel package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *travelPackageRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM travel_packages`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count travel packages", zap.Error(err))
		return 0, fmt.Errorf("count travel packages: %w", err)
	}

	return count, nil
}

func (r *travelPackageRepository) Update(ctx context.Context, pkg *entity.TravelPackage) error {
	query := `
		UPDATE travel_packages
		SET name = $2, description = $3, capacity = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Capacity,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update travel package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("update travel package %s: %w", pkg.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("travel package %s not found", pkg.ID.String())
	}

	return nil
}

func (r *travelPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM travel_packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete travel package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("delete travel package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("travel package %s not found", id.String())
	}

	r.log.Info("Travel package deleted", zap.String("package_id", id.String()))
	return nil
}
