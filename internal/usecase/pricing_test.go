package usecase

import (
	"testing"

	"travel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeFor(t *testing.T) {
	tests := []struct {
		name string
		tier entity.PassengerTier
		cost float64
		want float64
	}{
		{"standard pays full price", entity.TierStandard, 100, 100},
		{"gold gets ten percent off", entity.TierGold, 100, 90},
		{"premium travels free", entity.TierPremium, 100, 0},
		{"gold on odd price", entity.TierGold, 33, 29.7},
		{"zero cost activity", entity.TierStandard, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChargeFor(tt.tier, tt.cost)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestChargeForUnknownTier(t *testing.T) {
	_, err := ChargeFor(entity.PassengerTier("PLATINUM"), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLATINUM")
}

func TestRefundMirrorsCharge(t *testing.T) {
	for _, tier := range []entity.PassengerTier{entity.TierStandard, entity.TierGold, entity.TierPremium} {
		charge, err := ChargeFor(tier, 250)
		require.NoError(t, err)

		refund, err := RefundFor(tier, 250)
		require.NoError(t, err)

		assert.Equal(t, charge, refund)
	}
}
