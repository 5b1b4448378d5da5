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

type gatedPassengerRepo struct {
	*fakePassengerRepo
	reading chan struct{}
	resume  chan struct{}
	fired   atomic.Bool
}

func (r *gatedPassengerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	passenger, err := r.fakePassengerRepo.FindByID(ctx, id)
	if r.fired.CompareAndSwap(false, true) {
		close(r.reading)
		<-r.resume
	}
	return passenger, err
}

func TestUpdatePassengerDoesNotUndoConcurrentDebit(t *testing.T) {
	store := newFakeStore()
	gated := &gatedPassengerRepo{
		fakePassengerRepo: &fakePassengerRepo{store: store},
		reading:           make(chan struct{}),
		resume:            make(chan struct{}),
	}
	repo := &repository.Repository{
		Passenger: gated,
		Activity:  &fakeActivityRepo{store: store},
		Booking:   &fakeBookingRepo{store: store},
	}
	passengerSvc := NewPassengerService(repo, zap.NewNop())
	bookingSvc := NewBookingService(repo, zap.NewNop())

	passenger := seedPassenger(store, entity.TierStandard, 500)
	activity := seedActivity(store, 100, 5)

	mobile := "0711111111"
	done := make(chan error, 1)
	go func() {
		_, err := passengerSvc.UpdatePassenger(context.Background(), passenger.ID.String(), &request.UpdatePassengerRequest{
			Mobile: &mobile,
		})
		done <- err
	}()

	// The contact update has read balance 500 and is paused; book now.
	<-gated.reading
	_, err := bookingSvc.CreateBooking(context.Background(), createBookingRequest(passenger, activity))
	require.NoError(t, err)
	require.Equal(t, 400.0, store.passengers[passenger.ID].Balance)

	close(gated.resume)
	require.NoError(t, <-done)

	// The resumed update lands its mobile but must not restore the balance
	// or drop the booking from the list.
	stored := store.passengers[passenger.ID]
	assert.Equal(t, "0711111111", stored.Mobile)
	assert.Equal(t, 400.0, stored.Balance)
	assert.Len(t, stored.BookingIDs, 1)
	assert.Equal(t, 4, store.activities[activity.ID].Capacity)
}

func TestUpdatePassengerChangesContactOnly(t *testing.T) {
	store := newFakeStore()
	repo := &repository.Repository{
		Passenger: &fakePassengerRepo{store: store},
	}
	svc := NewPassengerService(repo, zap.NewNop())
	passenger := seedPassenger(store, entity.TierGold, 300)

	name := "Jamie Perera"
	resp, err := svc.UpdatePassenger(context.Background(), passenger.ID.String(), &request.UpdatePassengerRequest{
		Name: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jamie Perera", resp.Name)
	assert.Equal(t, 300.0, store.passengers[passenger.ID].Balance)
	assert.Equal(t, string(entity.TierGold), string(store.passengers[passenger.ID].Tier))
}
