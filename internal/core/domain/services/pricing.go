package services

import (
	"math"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Tariff constants, whole Rupiah. The tier tables are the published rate card;
// change them together with the dashboard copy.
const (
	// MinimumSubtotal is the floor applied after summing pickup and delivery fees.
	MinimumSubtotal = 3000

	// ExpressSurcharge is the flat fee added for express handling.
	ExpressSurcharge = 2000

	deliveryBaseOverageFee = 8000
	deliveryOverageStepFee = 1000
	deliveryOverageFromKm  = 4.5
)

// feeTier maps a distance ceiling (inclusive) to a flat fee.
type feeTier struct {
	upToKm float64
	fee    int
}

var pickupTiers = []feeTier{
	{upToKm: 1.0, fee: 1000},
	{upToKm: 3.0, fee: 2000},
	{upToKm: 5.0, fee: 3000},
}

const pickupOverageFee = 4000

var deliveryTiers = []feeTier{
	{upToKm: 0.7, fee: 3000},
	{upToKm: 1.5, fee: 4000},
	{upToKm: 2.5, fee: 5000},
	{upToKm: 3.5, fee: 6000},
	{upToKm: 4.5, fee: 7000},
}

// PricingEngine computes order quotes from pickup and delivery distances.
// It is a pure tariff calculator; distance measurement is the route planner's
// concern.
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// CalculateQuote prices an order. pickupKm is the leg from the courier pool to
// the pickup point, deliveryKm the leg from pickup to dropoff.
func (e PricingEngine) CalculateQuote(pickupKm, deliveryKm float64, express bool) (order.Pricing, error) {
	if err := validateDistance("pickupKm", pickupKm); err != nil {
		return order.Pricing{}, err
	}
	if err := validateDistance("deliveryKm", deliveryKm); err != nil {
		return order.Pricing{}, err
	}

	pickupFee := tierFee(pickupTiers, pickupKm, func(float64) int { return pickupOverageFee })
	deliveryFee := tierFee(deliveryTiers, deliveryKm, deliveryOverage)

	subtotal := pickupFee + deliveryFee
	if subtotal < MinimumSubtotal {
		subtotal = MinimumSubtotal
	}

	expressFee := 0
	if express {
		expressFee = ExpressSurcharge
	}

	return order.NewPricing(pickupFee, deliveryFee, expressFee, subtotal, subtotal+expressFee)
}

func validateDistance(param string, km float64) error {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return errs.NewValueIsInvalidError(param)
	}
	return nil
}

func tierFee(tiers []feeTier, km float64, overage func(km float64) int) int {
	for _, t := range tiers {
		if km <= t.upToKm {
			return t.fee
		}
	}
	return overage(km)
}

// deliveryOverage charges a stepped fee per started kilometer beyond the last
// tier. 4.6 km already counts as one full extra kilometer.
func deliveryOverage(km float64) int {
	extra := int(math.Ceil(km - deliveryOverageFromKm))
	return deliveryBaseOverageFee + deliveryOverageStepFee*extra
}
