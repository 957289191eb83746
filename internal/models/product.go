package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"index" json:"name"`
	Price             float64   `json:"price"`
	Category          string    `gorm:"index" json:"category"`
	Subcategory       string    `json:"subcategory,omitempty"`
	SubSubcategory    string    `json:"sub_subcategory,omitempty"`
	StockQuantity     int       `json:"stock_quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	ImageURL          string    `json:"image_url,omitempty"`
	IsActive          bool      `gorm:"index" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
