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

type PassengerRepository interface {
	Create(ctx context.Context, passenger *entity.Passenger) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Passenger, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, passenger *entity.Passenger) error
	UpdateContact(ctx context.Context, passenger *entity.Passenger) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, name, mobile, tier, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.Name,
		passenger.Mobile,
		passenger.Tier,
		passenger.Balance,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("passenger_id", passenger.ID.String()),
		)
		return fmt.Errorf("create passenger %s: %w", passenger.ID.String(), err)
	}

	return nil
}

func (r *passengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	query := `
		SELECT id, name, mobile, tier, balance, created_at, updated_at
		FROM passengers
		WHERE id = $1
	`

	var passenger entity.Passenger
	err := r.db.QueryRow(ctx, query, id).Scan(
		&passenger.ID,
		&passenger.Name,
		&passenger.Mobile,
		&passenger.Tier,
		&passenger.Balance,
		&passenger.CreatedAt,
		&passenger.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find passenger by ID",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return nil, fmt.Errorf("find passenger by ID %s: %w", id.String(), err)
	}

	bookingIDs, err := r.findBookingIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	passenger.BookingIDs = bookingIDs

	return &passenger, nil
}

// findBookingIDs loads the passenger's booking list in insertion order.
func (r *passengerRepository) findBookingIDs(ctx context.Context, passengerID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT booking_id
		FROM passenger_bookings
		WHERE passenger_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, passengerID)
	if err != nil {
		r.log.Error("Failed to find passenger bookings",
			zap.Error(err),
			zap.String("passenger_id", passengerID.String()),
		)
		return nil, fmt.Errorf("find bookings for passenger %s: %w", passengerID.String(), err)
	}
	defer rows.Close()

	var bookingIDs []uuid.UUID
	for rows.Next() {
		var bookingID uuid.UUID
		if err := rows.Scan(&bookingID); err != nil {
			r.log.Error("Failed to scan passenger booking row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger booking row: %w", err)
		}
		bookingIDs = append(bookingIDs, bookingID)
	}

	return bookingIDs, nil
}

func (r *passengerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Passenger, error) {
	query := `
		SELECT id, name, mobile, tier, balance, created_at, updated_at
		FROM passengers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find passengers",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find passengers: %w", err)
	}
	defer rows.Close()

	var passengers []*entity.Passenger
	for rows.Next() {
		var passenger entity.Passenger
		err := rows.Scan(
			&passenger.ID,
			&passenger.Name,
			&passenger.Mobile,
			&passenger.Tier,
			&passenger.Balance,
			&passenger.CreatedAt,
			&passenger.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &passenger)
	}

	return passengers, nil
}

func (r *passengerRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM passengers`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count passengers", zap.Error(err))
		return 0, fmt.Errorf("count passengers: %w", err)
	}

	return count, nil
}

// Update persists the passenger row and rewrites the booking list inside one
// transaction, so a crash cannot leave the list half-written.
func (r *passengerRepository) Update(ctx context.Context, passenger *entity.Passenger) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update passenger %s: %w", passenger.ID.String(), err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE passengers
		SET name = $2, mobile = $3, tier = $4, balance = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		passenger.ID,
		passenger.Name,
		passenger.Mobile,
		passenger.Tier,
		passenger.Balance,
		passenger.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update passenger",
			zap.Error(err),
			zap.String("passenger_id", passenger.ID.String()),
		)
		return fmt.Errorf("update passenger %s: %w", passenger.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("passenger %s not found", passenger.ID.String())
	}

	if _, err := tx.Exec(ctx, `DELETE FROM passenger_bookings WHERE passenger_id = $1`, passenger.ID); err != nil {
		return fmt.Errorf("clear bookings for passenger %s: %w", passenger.ID.String(), err)
	}

	insertQuery := `INSERT INTO passenger_bookings (passenger_id, booking_id, position) VALUES ($1, $2, $3)`
	for i, bookingID := range passenger.BookingIDs {
		if _, err := tx.Exec(ctx, insertQuery, passenger.ID, bookingID, i); err != nil {
			return fmt.Errorf("insert booking %s for passenger %s: %w", bookingID.String(), passenger.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update passenger %s: %w", passenger.ID.String(), err)
	}

	return nil
}

// UpdateContact persists name and mobile only. Balance and the booking list
// are never written here, so a contact edit racing a booking cannot clobber
// them with a stale read.
func (r *passengerRepository) UpdateContact(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		UPDATE passengers
		SET name = $2, mobile = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.Name,
		passenger.Mobile,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update passenger contact",
			zap.Error(err),
			zap.String("passenger_id", passenger.ID.String()),
		)
		return fmt.Errorf("update passenger contact %s: %w", passenger.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("passenger %s not found", passenger.ID.String())
	}

	return nil
}

func (r *passengerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM passengers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete passenger",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return fmt.Errorf("delete passenger %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("passenger %s not found", id.String())
	}

	r.log.Info("Passenger deleted", zap.String("passenger_id", id.String()))
	return nil
}
