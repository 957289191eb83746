package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentAuditLog records one distribution run with its per-invoice
// breakdown for later review.
type PaymentAuditLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID      uuid.UUID      `gorm:"type:uuid;index" json:"shop_id"`
	Action      string         `json:"action"`
	Amount      float64        `json:"amount"`
	PerformedBy uuid.UUID      `gorm:"type:uuid" json:"performed_by"`
	Details     datatypes.JSON `json:"details"`
	CreatedAt   time.Time      `json:"created_at"`
}
