package models

// InvoiceSequence is the single-row counter behind invoice number
// generation. The row is locked while incrementing so concurrent invoice
// creation never hands out the same number.
type InvoiceSequence struct {
	ID        int   `gorm:"primaryKey"`
	LastValue int64 `json:"last_value"`
}
