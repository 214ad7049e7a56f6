package services

import (
	"time"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
)

// paymentDefaults resolves the status/paymentInfo/paidAt combination an
// order is created with. COD defers payment; online methods are treated as
// paid at creation, keeping a caller-supplied paid-at when one is given.
func paymentDefaults(info models.PaymentInfo, paidAt *time.Time, now time.Time) (string, models.PaymentInfo, *time.Time, error) {
	switch info.Type {
	case models.PaymentMethodCOD:
		info.Status = models.PaymentStatusPending
		info.ID = ""
		return models.OrderStatusPlaced, info, nil, nil
	case models.PaymentMethodRazorpay:
		if info.Status == "" {
			info.Status = models.PaymentStatusSucceeded
		}
		if paidAt == nil {
			paidAt = &now
		}
		return models.OrderStatusPlaced, info, paidAt, nil
	default:
		return "", models.PaymentInfo{}, nil, apperror.BadRequest("Invalid payment method")
	}
}

// commissionTotal sums quantity x per-line commission over the cart.
func commissionTotal(cart []models.OrderLine) float64 {
	var total float64
	for _, line := range cart {
		total += float64(line.Quantity) * line.ProductCommissionAmount
	}
	return total
}

// serviceChargeFor is the portion withheld from the vendor payout. The
// vendor absorbs only commission when it delivers itself; when the platform
// delivers, shipping is withheld too. Any other value charges nothing.
func serviceChargeFor(deliveredBy string, shippingCharge, commission float64) float64 {
	switch deliveredBy {
	case models.DeliveredByVendor:
		return commission
	case models.DeliveredByAdmin:
		return shippingCharge + commission
	default:
		return 0
	}
}

// statusRank orders the delivery lifecycle. Cancellation sits outside the
// rank and is allowed from any non-terminal state.
var statusRank = map[string]int{
	models.OrderStatusPlaced:      0,
	models.OrderStatusTransferred: 1,
	models.OrderStatusProcessing:  2,
	models.OrderStatusShipped:     3,
	models.OrderStatusDelivered:   4,
}

// canTransition admits only forward movement through the lifecycle, so an
// order can never re-enter a state it already passed. The stock decrement
// on handoff and the delivery payout therefore fire at most once.
func canTransition(current, next string) error {
	if current == models.OrderStatusDelivered || current == models.OrderStatusCancelled {
		return apperror.BadRequest("Order is already " + current)
	}
	if next == models.OrderStatusCancelled {
		return nil
	}
	currentRank, ok := statusRank[current]
	if !ok {
		return apperror.BadRequest("Unknown order status: " + current)
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return apperror.BadRequest("Unknown order status: " + next)
	}
	if nextRank <= currentRank {
		return apperror.BadRequest("Order is already " + current)
	}
	return nil
}
