package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Pricing is the computed delivery fee breakdown for an order. All amounts are
// whole Rupiah. Pricing is immutable once attached to an order; repricing
// replaces the whole value.
type Pricing struct {
	pickupFee   int
	deliveryFee int
	expressFee  int
	subtotal    int
	total       int
}

// NewPricing creates a Pricing after checking that every component is
// non-negative and the totals add up.
func NewPricing(pickupFee, deliveryFee, expressFee, subtotal, total int) (Pricing, error) {
	for name, v := range map[string]int{
		"pickupFee":   pickupFee,
		"deliveryFee": deliveryFee,
		"expressFee":  expressFee,
		"subtotal":    subtotal,
		"total":       total,
	} {
		if v < 0 {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%d is negative", v))
		}
	}

	if total != subtotal+expressFee {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%d does not equal subtotal %d plus express fee %d", total, subtotal, expressFee))
	}

	return Pricing{
		pickupFee:   pickupFee,
		deliveryFee: deliveryFee,
		expressFee:  expressFee,
		subtotal:    subtotal,
		total:       total,
	}, nil
}

// PickupFee returns the pickup leg fee in Rupiah.
func (p Pricing) PickupFee() int { return p.pickupFee }

// DeliveryFee returns the delivery leg fee in Rupiah.
func (p Pricing) DeliveryFee() int { return p.deliveryFee }

// ExpressFee returns the express surcharge in Rupiah (zero for regular orders).
func (p Pricing) ExpressFee() int { return p.expressFee }

// Subtotal returns pickup plus delivery fees, floored at the minimum charge.
func (p Pricing) Subtotal() int { return p.subtotal }

// Total returns the amount the customer pays.
func (p Pricing) Total() int { return p.total }
