package repository

import (
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByIDForUpdate locks the invoice row for the duration of tx. Postgres
// only; sqlite (used in tests) has no row locks, the surrounding transaction
// serializes writers there.
func (r *InvoiceRepository) GetByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ListByShop returns all invoices for a shop, oldest first.
func (r *InvoiceRepository) ListByShop(shopID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("shop_id = ?", shopID).Order("created_at ASC").Find(&invoices).Error
	return invoices, err
}

// ListOutstandingByShop returns the shop's invoices that still carry a
// balance, i.e. everything not yet marked paid. It runs inside tx so the
// candidate set is read on the same connection that goes on to lock and
// update the rows.
func (r *InvoiceRepository) ListOutstandingByShop(tx *gorm.DB, shopID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := tx.
		Where("shop_id = ? AND payment_status IN ?", shopID, []string{models.StatusUnpaid, models.StatusPartial}).
		Order("created_at ASC").
		Find(&invoices).Error
	return invoices, err
}

// SearchInvoices used for the invoice list page with optional filters
func (r *InvoiceRepository) SearchInvoices(shopID *uuid.UUID, statuses []string, from, to *time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice

	dbQuery := r.db.Model(&models.Invoice{})

	if shopID != nil {
		dbQuery = dbQuery.Where("shop_id = ?", *shopID)
	}
	if len(statuses) > 0 {
		dbQuery = dbQuery.Where("payment_status IN ?", statuses)
	}
	if from != nil {
		dbQuery = dbQuery.Where("created_at >= ?", *from)
	}
	if to != nil {
		dbQuery = dbQuery.Where("created_at <= ?", *to)
	}

	err := dbQuery.Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

// UpdateStatus persists a derived payment status inside tx.
func (r *InvoiceRepository) UpdateStatus(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&models.Invoice{}).Where("id = ?", id).Update("payment_status", status).Error
}

// ItemsByInvoice returns the line items of an invoice.
func (r *InvoiceRepository) ItemsByInvoice(invoiceID uuid.UUID) ([]models.InvoiceItem, error) {
	var items []models.InvoiceItem
	err := r.db.Where("invoice_id = ?", invoiceID).Find(&items).Error
	return items, err
}
