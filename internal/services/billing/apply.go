package billing

import (
	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApplyResult is the outcome of recording one payment against one invoice.
type ApplyResult struct {
	Payment   *models.Payment `json:"payment"`
	NewStatus string          `json:"new_status"`
	Remaining float64         `json:"remaining"`
}

// ApplyPayment records a single payment against a single invoice and keeps
// its persisted status consistent with the payment history. The payment
// insert and status update run in one transaction holding the invoice row,
// so concurrent payments against the same invoice serialize instead of
// racing the remaining-balance check.
//
// Amounts within Tolerance of the remaining balance are accepted as payoffs.
func (s *Service) ApplyPayment(invoiceID uuid.UUID, in PaymentInput) (*ApplyResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var result ApplyResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoice, err := s.invoiceRepo.GetByIDForUpdate(tx, invoiceID)
		if err != nil {
			return &PersistenceError{Op: "fetch invoice", Err: err}
		}

		payments, err := s.paymentRepo.ListByInvoiceTx(tx, invoiceID)
		if err != nil {
			return &PersistenceError{Op: "fetch payments", Err: err}
		}

		remaining := Remaining(invoice.TotalAmount, payments)
		if in.Amount-remaining > Tolerance {
			return validationErrorf("payment amount cannot exceed remaining balance")
		}

		payment := in.newPayment(invoiceID, in.Amount)
		if err := tx.Create(payment).Error; err != nil {
			return &PersistenceError{Op: "insert payment", Err: err}
		}

		// Recompute from the full updated payment set, never by hand.
		updated, err := s.paymentRepo.ListByInvoiceTx(tx, invoiceID)
		if err != nil {
			return &PersistenceError{Op: "fetch payments", Err: err}
		}
		newStatus := DeriveStatus(invoice.TotalAmount, amounts(updated))
		if err := s.invoiceRepo.UpdateStatus(tx, invoiceID, newStatus); err != nil {
			return &PersistenceError{Op: "update invoice status", Err: err}
		}

		result = ApplyResult{
			Payment:   payment,
			NewStatus: newStatus,
			Remaining: Remaining(invoice.TotalAmount, updated),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"invoice_id": invoiceID,
		"amount":     in.Amount,
		"method":     in.Method,
		"new_status": result.NewStatus,
	}).Info("payment recorded")

	return &result, nil
}
