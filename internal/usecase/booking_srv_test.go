package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore backs the fake repositories with copy-on-read/copy-on-write maps,
// so a forgotten Update call shows up as a failed assertion instead of being
// hidden by shared pointers.
type fakeStore struct {
	mu         sync.Mutex
	passengers map[uuid.UUID]*entity.Passenger
	activities map[uuid.UUID]*entity.Activity
	bookings   map[uuid.UUID]*entity.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		passengers: make(map[uuid.UUID]*entity.Passenger),
		activities: make(map[uuid.UUID]*entity.Activity),
		bookings:   make(map[uuid.UUID]*entity.Booking),
	}
}

func copyPassenger(p *entity.Passenger) *entity.Passenger {
	cp := *p
	cp.BookingIDs = append([]uuid.UUID(nil), p.BookingIDs...)
	return &cp
}

type fakePassengerRepo struct{ store *fakeStore }

func (r *fakePassengerRepo) Create(_ context.Context, passenger *entity.Passenger) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.passengers[passenger.ID] = copyPassenger(passenger)
	return nil
}

func (r *fakePassengerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Passenger, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	passenger, ok := r.store.passengers[id]
	if !ok {
		return nil, nil
	}
	return copyPassenger(passenger), nil
}

func (r *fakePassengerRepo) FindAll(_ context.Context, _, _ int) ([]*entity.Passenger, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var passengers []*entity.Passenger
	for _, passenger := range r.store.passengers {
		passengers = append(passengers, copyPassenger(passenger))
	}
	return passengers, nil
}

func (r *fakePassengerRepo) Count(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.passengers)), nil
}

func (r *fakePassengerRepo) Update(_ context.Context, passenger *entity.Passenger) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.passengers[passenger.ID]; !ok {
		return errors.New("passenger not found")
	}
	r.store.passengers[passenger.ID] = copyPassenger(passenger)
	return nil
}

func (r *fakePassengerRepo) UpdateContact(_ context.Context, passenger *entity.Passenger) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.passengers[passenger.ID]
	if !ok {
		return errors.New("passenger not found")
	}
	stored.Name = passenger.Name
	stored.Mobile = passenger.Mobile
	stored.UpdatedAt = passenger.UpdatedAt
	return nil
}

func (r *fakePassengerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.passengers, id)
	return nil
}

type fakeActivityRepo struct{ store *fakeStore }

func (r *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *activity
	r.store.activities[activity.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	activity, ok := r.store.activities[id]
	if !ok {
		return nil, nil
	}
	cp := *activity
	return &cp, nil
}

func (r *fakeActivityRepo) FindByDestinationID(_ context.Context, destinationID uuid.UUID) ([]*entity.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var activities []*entity.Activity
	for _, activity := range r.store.activities {
		if activity.DestinationID == destinationID {
			cp := *activity
			activities = append(activities, &cp)
		}
	}
	return activities, nil
}

func (r *fakeActivityRepo) Update(_ context.Context, activity *entity.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.activities[activity.ID]; !ok {
		return errors.New("activity not found")
	}
	cp := *activity
	r.store.activities[activity.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) UpdateDetails(_ context.Context, activity *entity.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.activities[activity.ID]
	if !ok {
		return errors.New("activity not found")
	}
	stored.Name = activity.Name
	stored.Description = activity.Description
	stored.Cost = activity.Cost
	stored.UpdatedAt = activity.UpdatedAt
	return nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.activities, id)
	return nil
}

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *booking
	r.store.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *booking
	return &cp, nil
}

func (r *fakeBookingRepo) FindByPassengerID(_ context.Context, passengerID uuid.UUID, _, _ int) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range r.store.bookings {
		if booking.PassengerID == passengerID {
			cp := *booking
			bookings = append(bookings, &cp)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) CountByPassengerID(_ context.Context, passengerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, booking := range r.store.bookings {
		if booking.PassengerID == passengerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.bookings[booking.ID]; !ok {
		return errors.New("booking not found")
	}
	cp := *booking
	r.store.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[bookingID]
	if !ok {
		return errors.New("booking not found")
	}
	booking.Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.bookings, id)
	return nil
}

func newTestBookingService() (BookingService, *fakeStore) {
	store := newFakeStore()
	repo := &repository.Repository{
		Passenger: &fakePassengerRepo{store: store},
		Activity:  &fakeActivityRepo{store: store},
		Booking:   &fakeBookingRepo{store: store},
	}
	return NewBookingService(repo, zap.NewNop()), store
}

func seedPassenger(store *fakeStore, tier entity.PassengerTier, balance float64) *entity.Passenger {
	passenger := &entity.Passenger{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "Test Passenger",
		Mobile:  "0700000000",
		Tier:    tier,
		Balance: balance,
	}
	store.passengers[passenger.ID] = passenger
	return passenger
}

func seedActivity(store *fakeStore, cost float64, capacity int) *entity.Activity {
	activity := &entity.Activity{
		Base:          entity.Base{ID: uuid.New()},
		Name:          "City Tour",
		Cost:          cost,
		Capacity:      capacity,
		DestinationID: uuid.New(),
	}
	store.activities[activity.ID] = activity
	return activity
}

func createBookingRequest(passenger *entity.Passenger, activity *entity.Activity) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		PassengerID:   passenger.ID.String(),
		ActivityID:    activity.ID.String(),
		DestinationID: activity.DestinationID.String(),
	}
}

func TestCreateBookingDebitsAndDecrements(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	resp, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	assert.Equal(t, 100.0, resp.ChargedAmount)
	assert.NotEmpty(t, resp.Reference)

	stored := store.passengers[passenger.ID]
	assert.Equal(t, 400.0, stored.Balance)
	require.Len(t, stored.BookingIDs, 1)
	assert.Equal(t, resp.ID, stored.BookingIDs[0].String())

	assert.Equal(t, 4, store.activities[activity.ID].Capacity)

	bookingID := uuid.MustParse(resp.ID)
	require.Contains(t, store.bookings, bookingID)
	assert.Equal(t, entity.BookingStatusPending, store.bookings[bookingID].Status)
}

func TestCreateBookingGoldDiscount(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierGold, 500)
	activity := seedActivity(store, 100, 5)

	resp, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	assert.Equal(t, 90.0, resp.ChargedAmount)
	assert.Equal(t, 410.0, store.passengers[passenger.ID].Balance)
}

func TestCreateBookingPremiumIsFree(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierPremium, 0)
	activity := seedActivity(store, 100, 5)

	resp, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.ChargedAmount)
	assert.Equal(t, 0.0, store.passengers[passenger.ID].Balance)
	assert.Equal(t, 4, store.activities[activity.ID].Capacity)
}

func TestCreateBookingCapacityFull(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 0)

	_, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.ErrorIs(t, err, ErrCapacityExceeded)

	// No mutation on failure
	assert.Equal(t, 500.0, store.passengers[passenger.ID].Balance)
	assert.Empty(t, store.passengers[passenger.ID].BookingIDs)
	assert.Equal(t, 0, store.activities[activity.ID].Capacity)
	assert.Empty(t, store.bookings)
}

func TestCreateBookingInsufficientBalance(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierGold, 50)
	activity := seedActivity(store, 100, 5)

	// GOLD charge is 90, above the 50 balance
	_, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.ErrorIs(t, err, ErrInsufficientBalance)

	assert.Equal(t, 50.0, store.passengers[passenger.ID].Balance)
	assert.Equal(t, 5, store.activities[activity.ID].Capacity)
	assert.Empty(t, store.bookings)
}

func TestCreateBookingPassengerNotFound(t *testing.T) {
	svc, store := newTestBookingService()
	activity := seedActivity(store, 100, 5)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		PassengerID:   uuid.New().String(),
		ActivityID:    activity.ID.String(),
		DestinationID: activity.DestinationID.String(),
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "passenger", notFound.Kind)
}

func TestCreateBookingActivityNotFound(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		PassengerID:   passenger.ID.String(),
		ActivityID:    uuid.New().String(),
		DestinationID: uuid.New().String(),
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "activity", notFound.Kind)
}

func TestCancelBookingRestoresPreBookingState(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	created, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	resp, err := svc.UpdateBookingStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusCancelled),
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusCancelled), resp.Status)
	assert.Equal(t, 500.0, store.passengers[passenger.ID].Balance)
	assert.Empty(t, store.passengers[passenger.ID].BookingIDs)
	assert.Equal(t, 5, store.activities[activity.ID].Capacity)
	assert.Equal(t, entity.BookingStatusCancelled, store.bookings[uuid.MustParse(created.ID)].Status)
}

func TestCancelBookingSecondCancelDoesNotRefundTwice(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	created, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	cancel := &request.UpdateBookingStatusRequest{Status: string(entity.BookingStatusCancelled)}

	_, err = svc.UpdateBookingStatus(context.Background(), created.ID, cancel)
	require.NoError(t, err)

	resp, err := svc.UpdateBookingStatus(context.Background(), created.ID, cancel)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusCancelled), resp.Status)

	assert.Equal(t, 500.0, store.passengers[passenger.ID].Balance)
	assert.Equal(t, 5, store.activities[activity.ID].Capacity)
}

func TestCancelBookingRefundIgnoresPriceChange(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	created, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	// Price goes up after booking; the refund stays at the charged 100.
	store.mu.Lock()
	store.activities[activity.ID].Cost = 250
	store.mu.Unlock()

	_, err = svc.UpdateBookingStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusCancelled),
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, store.passengers[passenger.ID].Balance)
}

func TestConfirmBookingHasNoSideEffects(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	created, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	resp, err := svc.UpdateBookingStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusConfirmed),
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusConfirmed), resp.Status)
	assert.Equal(t, 400.0, store.passengers[passenger.ID].Balance)
	assert.Equal(t, 4, store.activities[activity.ID].Capacity)
}

func TestCancelledBookingIsTerminal(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	created, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusCancelled),
	})
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(context.Background(), created.ID, &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusConfirmed),
	})
	require.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc, _ := newTestBookingService()

	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New().String(), &request.UpdateBookingStatusRequest{
		Status: string(entity.BookingStatusConfirmed),
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "booking", notFound.Kind)
}

func TestGetBookingDetails(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	created, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)

	resp, err := svc.GetBookingDetails(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.Reference, resp.Reference)

	_, err = svc.GetBookingDetails(context.Background(), uuid.New().String())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetPassengerBookings(t *testing.T) {
	svc, store := newTestBookingService()
	passenger := seedPassenger(store, entity.TierStandard, 500)
	first := seedActivity(store, 100, 5)
	second := seedActivity(store, 50, 5)

	for _, activity := range []*entity.Activity{first, second} {
		_, err := svc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
		require.NoError(t, err)
	}

	page, err := svc.GetPassengerBookings(context.Background(), passenger.ID.String(), &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(2), page.Pagination.Total)
	for _, booking := range page.Data {
		assert.Equal(t, passenger.ID.String(), booking.PassengerID)
	}
}

func TestGetPassengerBookingsPassengerNotFound(t *testing.T) {
	svc, _ := newTestBookingService()

	_, err := svc.GetPassengerBookings(context.Background(), uuid.New().String(), &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "passenger", notFound.Kind)
}

func TestConcurrentBookingsLastSlot(t *testing.T) {
	svc, store := newTestBookingService()
	first := seedPassenger(store, entity.TierStandard, 500)
	second := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, passenger := range []*entity.Passenger{first, second} {
		wg.Add(1)
		go func(i int, p *entity.Passenger) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), createBookingRequest(p, activity))
		}(i, passenger)
	}
	wg.Wait()

	var failures int
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, ErrCapacityExceeded)
			failures++
		}
	}

	// Exactly one booking wins the last slot, capacity never goes negative.
	assert.Equal(t, 1, failures)
	assert.Equal(t, 0, store.activities[activity.ID].Capacity)
	assert.Len(t, store.bookings, 1)
}
