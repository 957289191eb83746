package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MethodCash  = "cash"
	MethodCheck = "check"
)

// Payment is append-only: rows are created exactly once and never updated
// or deleted by the application.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;index" json:"invoice_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `gorm:"index" json:"payment_method"`
	CheckNumber   string    `json:"check_number,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PaymentDate   time.Time `gorm:"index" json:"payment_date"`
	CreatedBy     uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}
