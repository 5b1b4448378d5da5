package usecase

import (
	"context"
	"sync/atomic"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gatedActivityRepo pauses the first FindByID between read and write so a
// booking can land inside another caller's read-modify-write window.
type gatedActivityRepo struct {
	*fakeActivityRepo
	reading chan struct{}
	resume  chan struct{}
	fired   atomic.Bool
}

func (r *gatedActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := r.fakeActivityRepo.FindByID(ctx, id)
	if r.fired.CompareAndSwap(false, true) {
		close(r.reading)
		<-r.resume
	}
	return activity, err
}

func TestUpdateActivityDoesNotResurrectBookedSlot(t *testing.T) {
	store := newFakeStore()
	gated := &gatedActivityRepo{
		fakeActivityRepo: &fakeActivityRepo{store: store},
		reading:          make(chan struct{}),
		resume:           make(chan struct{}),
	}
	repo := &repository.Repository{
		Passenger: &fakePassengerRepo{store: store},
		Activity:  gated,
		Booking:   &fakeBookingRepo{store: store},
	}
	activitySvc := NewActivityService(repo, zap.NewNop())
	bookingSvc := NewBookingService(repo, zap.NewNop())

	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	newCost := 120.0
	done := make(chan error, 1)
	go func() {
		_, err := activitySvc.UpdateActivity(context.Background(), activity.ID.String(), &request.UpdateActivityRequest{
			Cost: &newCost,
		})
		done <- err
	}()

	// The cost update has read capacity 5 and is paused; book the slot now.
	<-gated.reading
	_, err := bookingSvc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)
	require.Equal(t, 4, store.activities[activity.ID].Capacity)

	close(gated.resume)
	require.NoError(t, <-done)

	// The resumed update lands its cost but must not restore the slot.
	assert.Equal(t, 120.0, store.activities[activity.ID].Cost)
	assert.Equal(t, 4, store.activities[activity.ID].Capacity)
	assert.Len(t, store.bookings, 1)
	assert.Equal(t, 400.0, store.passengers[passenger.ID].Balance)
}

func TestUpdateActivityChangesDetailsOnly(t *testing.T) {
	store := newFakeStore()
	repo := &repository.Repository{
		Activity: &fakeActivityRepo{store: store},
	}
	svc := NewActivityService(repo, zap.NewNop())
	activity := seedActivity(store, 100, 5)

	name := "Sunset Kayak"
	cost := 80.0
	resp, err := svc.UpdateActivity(context.Background(), activity.ID.String(), &request.UpdateActivityRequest{
		Name: &name,
		Cost: &cost,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sunset Kayak", resp.Name)
	assert.Equal(t, 80.0, store.activities[activity.ID].Cost)
	assert.Equal(t, 5, store.activities[activity.ID].Capacity)
}
