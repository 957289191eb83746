package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values. The status is derived from the invoice's payment
// history and persisted for query efficiency; every write path that touches
// payments must recompute it.
const (
	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

type Invoice struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber  string    `gorm:"uniqueIndex" json:"invoice_number"`
	ShopID         uuid.UUID `gorm:"type:uuid;index" json:"shop_id"`
	TotalAmount    float64   `json:"total_amount"`
	DiscountAmount float64   `json:"discount_amount"`
	PaymentStatus  string    `gorm:"index" json:"payment_status"`
	Notes          string    `json:"notes"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index" json:"invoice_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
}
