package billing

import (
	"encoding/json"
	"sort"
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Allocation is the portion of one distributed payment applied to one
// invoice.
type Allocation struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        float64   `json:"amount"`
	NewStatus     string    `json:"new_status"`
}

// DistributionResult reports a completed distribution run.
type DistributionResult struct {
	ShopID       uuid.UUID    `json:"shop_id"`
	Amount       float64      `json:"amount"`
	TotalPending float64      `json:"total_pending"`
	Allocations  []Allocation `json:"allocations"`
}

// DistributePayment splits one payment across a shop's outstanding invoices.
//
// Candidates are ordered unpaid-oldest-first, then everything else
// oldest-first; the amount is walked down that order, each invoice taking
// min(what is left of the payment, its remaining balance). Invoices already
// settled are skipped. The whole run is one transaction: a failure anywhere
// rolls every allocation back and surfaces a PartialApplicationError naming
// how far the loop got.
//
// The upper-bound check against the shop's total pending balance is strict
// (no tolerance); an amount equal to the pending total is accepted and
// settles every invoice.
func (s *Service) DistributePayment(shopID uuid.UUID, in PaymentInput) (*DistributionResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var result DistributionResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoices, err := s.invoiceRepo.ListOutstandingByShop(tx, shopID)
		if err != nil {
			return &PersistenceError{Op: "fetch invoices", Err: err}
		}

		ordered := orderForDistribution(invoices)

		// Lock rows and take the remaining balances in one pass so the
		// validation and the allocation loop see the same numbers. Locks are
		// taken in distribution order, which keeps concurrent runs for the
		// same shop deadlock-free.
		remainings := make([]float64, len(ordered))
		totalPending := 0.0
		for i := range ordered {
			locked, err := s.invoiceRepo.GetByIDForUpdate(tx, ordered[i].ID)
			if err != nil {
				return &PersistenceError{Op: "fetch invoice", Err: err}
			}
			payments, err := s.paymentRepo.ListByInvoiceTx(tx, locked.ID)
			if err != nil {
				return &PersistenceError{Op: "fetch payments", Err: err}
			}
			remainings[i] = Remaining(locked.TotalAmount, payments)
			// Same threshold as the allocation loop below: sub-cent residues
			// are neither counted nor allocated.
			if remainings[i] > Tolerance {
				totalPending += remainings[i]
			}
		}

		if in.Amount > totalPending {
			return validationErrorf("payment amount cannot exceed total pending balance")
		}

		remainingPayment := in.Amount
		for i := range ordered {
			if remainingPayment <= 0 {
				break
			}
			invoicePending := remainings[i]
			if invoicePending <= Tolerance {
				continue
			}

			apply := remainingPayment
			if invoicePending < apply {
				apply = invoicePending
			}

			payment := in.newPayment(ordered[i].ID, apply)
			if err := tx.Create(payment).Error; err != nil {
				return &PartialApplicationError{
					Applied:  appliedIDs(result.Allocations),
					FailedAt: ordered[i].ID,
					Err:      err,
				}
			}

			payments, err := s.paymentRepo.ListByInvoiceTx(tx, ordered[i].ID)
			if err != nil {
				return &PartialApplicationError{
					Applied:  appliedIDs(result.Allocations),
					FailedAt: ordered[i].ID,
					Err:      err,
				}
			}
			newStatus := DeriveStatus(ordered[i].TotalAmount, amounts(payments))
			if err := s.invoiceRepo.UpdateStatus(tx, ordered[i].ID, newStatus); err != nil {
				return &PartialApplicationError{
					Applied:  appliedIDs(result.Allocations),
					FailedAt: ordered[i].ID,
					Err:      err,
				}
			}

			result.Allocations = append(result.Allocations, Allocation{
				InvoiceID:     ordered[i].ID,
				InvoiceNumber: ordered[i].InvoiceNumber,
				Amount:        apply,
				NewStatus:     newStatus,
			})
			remainingPayment -= apply
		}

		result.ShopID = shopID
		result.Amount = in.Amount
		result.TotalPending = totalPending

		return s.writeAuditLog(tx, &result, in.CreatedBy)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"shop_id":     shopID,
		"amount":      in.Amount,
		"allocations": len(result.Allocations),
	}).Info("payment distributed")

	return &result, nil
}

// orderForDistribution sorts candidates into the deterministic allocation
// order: status-unpaid invoices first, then the rest, each partition oldest
// created first.
func orderForDistribution(invoices []models.Invoice) []models.Invoice {
	ordered := make([]models.Invoice, len(invoices))
	copy(ordered, invoices)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		aUnpaid := a.PaymentStatus == models.StatusUnpaid
		bUnpaid := b.PaymentStatus == models.StatusUnpaid
		if aUnpaid != bUnpaid {
			return aUnpaid
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return ordered
}

func appliedIDs(allocations []Allocation) []uuid.UUID {
	ids := make([]uuid.UUID, len(allocations))
	for i, a := range allocations {
		ids[i] = a.InvoiceID
	}
	return ids
}

func (s *Service) writeAuditLog(tx *gorm.DB, result *DistributionResult, performedBy uuid.UUID) error {
	details, err := json.Marshal(result.Allocations)
	if err != nil {
		return &PersistenceError{Op: "encode audit details", Err: err}
	}
	entry := &models.PaymentAuditLog{
		ID:          uuid.New(),
		ShopID:      result.ShopID,
		Action:      "distribute_payment",
		Amount:      result.Amount,
		PerformedBy: performedBy,
		Details:     datatypes.JSON(details),
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(entry).Error; err != nil {
		return &PersistenceError{Op: "insert audit log", Err: err}
	}
	return nil
}
