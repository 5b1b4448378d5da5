package usecase

import (
	"fmt"

	"travel-booking/internal/data/entity"
)

// ChargeFor returns the amount debited from a passenger for an activity:
// STANDARD pays the full cost, GOLD pays 90%, PREMIUM rides free.
func ChargeFor(tier entity.PassengerTier, baseCost float64) (float64, error) {
	switch tier {
	case entity.TierStandard:
		return baseCost, nil
	case entity.TierGold:
		return baseCost * 0.90, nil
	case entity.TierPremium:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown passenger tier %q", tier)
	}
}

// RefundFor mirrors ChargeFor for every tier, so cancellation is financially
// neutral. Refunds of existing bookings use the amount snapshotted at
// creation; this is the rate for anything that needs to recompute it.
func RefundFor(tier entity.PassengerTier, baseCost float64) (float64, error) {
	return ChargeFor(tier, baseCost)
}
