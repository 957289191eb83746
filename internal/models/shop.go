package models

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"index" json:"name"`
	OwnerName          string    `json:"owner_name,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	StreetAddress      string    `json:"street_address,omitempty"`
	StreetAddressLine2 string    `json:"street_address_line_2,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	ZipCode            string    `json:"zip_code,omitempty"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
