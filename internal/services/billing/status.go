package billing

import "shop-backoffice-backend/internal/models"

// Tolerance is the fixed absolute epsilon for monetary comparisons. Sums of
// currency values accumulate float rounding; anything within a cent of equal
// is treated as equal.
const Tolerance = 0.01

// DeriveStatus maps an invoice total and its payment history to a payment
// status. Pure and deterministic; the persisted payment_status column must
// always agree with this function.
//
// A zero-total invoice with no payments derives unpaid, not paid. That is a
// degenerate but valid state (a fully discounted invoice) and is kept as-is.
func DeriveStatus(totalAmount float64, payments []float64) string {
	totalPaid := 0.0
	for _, p := range payments {
		totalPaid += p
	}

	switch {
	case totalPaid <= 0:
		return models.StatusUnpaid
	case totalPaid-totalAmount >= -Tolerance:
		return models.StatusPaid
	default:
		return models.StatusPartial
	}
}

// Remaining returns the balance still owed on an invoice.
func Remaining(totalAmount float64, payments []models.Payment) float64 {
	return totalAmount - sumPayments(payments)
}

func sumPayments(payments []models.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func amounts(payments []models.Payment) []float64 {
	out := make([]float64, len(payments))
	for i, p := range payments {
		out[i] = p.Amount
	}
	return out
}
