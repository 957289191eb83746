package repository

import (
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListByInvoice returns every payment recorded against an invoice.
func (r *PaymentRepository) ListByInvoice(invoiceID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("invoice_id = ?", invoiceID).Order("payment_date ASC").Find(&payments).Error
	return payments, err
}

// ListByInvoiceTx is ListByInvoice inside an open transaction, so the
// status recomputation reads the payment set it is about to be derived from.
func (r *PaymentRepository) ListByInvoiceTx(tx *gorm.DB, invoiceID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := tx.Where("invoice_id = ?", invoiceID).Order("payment_date ASC").Find(&payments).Error
	return payments, err
}

// ListByDateRange returns payments whose payment_date falls in [from, to].
func (r *PaymentRepository) ListByDateRange(from, to time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("payment_date >= ? AND payment_date <= ?", from, to).
		Order("payment_date ASC").
		Find(&payments).Error
	return payments, err
}
