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

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	GetBookingDetails(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetPassengerBookings(ctx context.Context, passengerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo  *repository.Repository
	locks *keyedMutex
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		locks: newKeyedMutex(),
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	passengerID, err := uuid.Parse(req.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID format %s: %w", req.PassengerID, err)
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", req.ActivityID, err)
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination ID format %s: %w", req.DestinationID, err)
	}

	// Hold both entities for the whole read-check-write sequence. Two
	// concurrent bookings against capacity 1 must not both pass the check.
	unlock := s.locks.Lock(passengerID.String(), activityID.String())
	defer unlock()

	passenger, err := s.repo.Passenger.FindByID(ctx, passengerID)
	if err != nil {
		return nil, fmt.Errorf("load passenger: %w", err)
	}
	if passenger == nil {
		return nil, &NotFoundError{Kind: "passenger", ID: req.PassengerID}
	}

	activity, err := s.repo.Activity.FindByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}
	if activity == nil {
		return nil, &NotFoundError{Kind: "activity", ID: req.ActivityID}
	}

	if activity.Capacity <= 0 {
		return nil, fmt.Errorf("activity %s: %w", req.ActivityID, ErrCapacityExceeded)
	}

	charge, err := ChargeFor(passenger.Tier, activity.Cost)
	if err != nil {
		return nil, fmt.Errorf("price booking: %w", err)
	}

	if passenger.Balance < charge {
		return nil, fmt.Errorf("activity %s costs %.2f: %w", req.ActivityID, charge, ErrInsufficientBalance)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:     utils.GenerateBookingRef(),
		PassengerID:   passengerID,
		ActivityID:    activityID,
		DestinationID: destinationID,
		ChargedAmount: charge,
		Status:        entity.BookingStatusPending,
	}

	// The booking row goes in before any money or capacity moves. A crash
	// here leaves an orphaned PENDING booking for reconciliation, never a
	// debited passenger without a booking record.
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("passenger_id", req.PassengerID),
			zap.String("activity_id", req.ActivityID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	passenger.Balance -= charge
	passenger.BookingIDs = append(passenger.BookingIDs, booking.ID)
	passenger.UpdatedAt = now
	if err := s.repo.Passenger.Update(ctx, passenger); err != nil {
		s.log.Error("Failed to debit passenger",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("passenger_id", req.PassengerID),
		)
		return nil, fmt.Errorf("debit passenger: %w", err)
	}

	activity.Capacity--
	activity.UpdatedAt = now
	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.log.Error("Failed to decrement activity capacity",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("activity_id", req.ActivityID),
		)
		return nil, fmt.Errorf("decrement capacity: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("passenger_id", req.PassengerID),
		zap.String("activity_id", req.ActivityID),
		zap.Float64("charged_amount", charge),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}
	newStatus := entity.BookingStatus(req.Status)

	// Serialize per booking so two concurrent cancels cannot both see a
	// live status and refund twice.
	unlock := s.locks.Lock(id.String())
	defer unlock()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, &NotFoundError{Kind: "booking", ID: bookingID}
	}

	if booking.Status == entity.BookingStatusCancelled {
		// CANCELLED is terminal. Re-cancelling is a no-op, never a
		// second refund.
		if newStatus == entity.BookingStatusCancelled {
			return response.BookingToResponse(booking), nil
		}
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingCancelled)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, newStatus); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	if newStatus == entity.BookingStatusCancelled {
		if err := s.settleCancellation(ctx, booking); err != nil {
			return nil, err
		}
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	return response.BookingToResponse(booking), nil
}

// settleCancellation refunds the snapshotted charge and releases the
// activity slot. A missing passenger or activity here is a hard
// inconsistency, not a normal miss.
func (s *bookingService) settleCancellation(ctx context.Context, booking *entity.Booking) error {
	unlock := s.locks.Lock(booking.PassengerID.String(), booking.ActivityID.String())
	defer unlock()

	passenger, err := s.repo.Passenger.FindByID(ctx, booking.PassengerID)
	if err != nil {
		return fmt.Errorf("load passenger: %w", err)
	}
	if passenger == nil {
		s.log.Error("Cancelled booking references missing passenger",
			zap.String("booking_id", booking.ID.String()),
			zap.String("passenger_id", booking.PassengerID.String()),
		)
		return &NotFoundError{Kind: "passenger", ID: booking.PassengerID.String()}
	}

	activity, err := s.repo.Activity.FindByID(ctx, booking.ActivityID)
	if err != nil {
		return fmt.Errorf("load activity: %w", err)
	}
	if activity == nil {
		s.log.Error("Cancelled booking references missing activity",
			zap.String("booking_id", booking.ID.String()),
			zap.String("activity_id", booking.ActivityID.String()),
		)
		return &NotFoundError{Kind: "activity", ID: booking.ActivityID.String()}
	}

	// Refund exactly what was charged at creation; a price change on the
	// activity since then does not alter the refund.
	refund := booking.ChargedAmount
	now := time.Now()

	passenger.Balance += refund
	passenger.BookingIDs = removeBookingID(passenger.BookingIDs, booking.ID)
	passenger.UpdatedAt = now
	if err := s.repo.Passenger.Update(ctx, passenger); err != nil {
		s.log.Error("Failed to refund passenger",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("passenger_id", booking.PassengerID.String()),
		)
		return fmt.Errorf("refund passenger: %w", err)
	}

	activity.Capacity++
	activity.UpdatedAt = now
	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.log.Error("Failed to release activity capacity",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("activity_id", booking.ActivityID.String()),
		)
		return fmt.Errorf("release capacity: %w", err)
	}

	s.log.Info("Booking cancelled and settled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.Float64("refund", refund),
	)

	return nil
}

func removeBookingID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func (s *bookingService) GetBookingDetails(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, &NotFoundError{Kind: "booking", ID: bookingID}
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) GetPassengerBookings(ctx context.Context, passengerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load passenger: %w", err)
	}
	if passenger == nil {
		return nil, &NotFoundError{Kind: "passenger", ID: passengerID}
	}

	bookings, err := s.repo.Booking.FindByPassengerID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get passenger bookings",
			zap.Error(err),
			zap.String("passenger_id", passengerID),
		)
		return nil, fmt.Errorf("get passenger bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByPassengerID(ctx, id)
	if err != nil {
		s.log.Error("Failed to count passenger bookings", zap.Error(err))
		return nil, fmt.Errorf("count passenger bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}
