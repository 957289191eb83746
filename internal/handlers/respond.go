package handlers

import (
	"errors"
	"net/http"

	"shop-backoffice-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps domain errors to HTTP responses. Validation failures go
// back verbatim; everything else is a storage-level failure.
func respondError(c *gin.Context, err error) {
	var validation *billing.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var partial *billing.PartialApplicationError
	if errors.As(err, &partial) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             partial.Error(),
			"applied_invoices":  partial.Applied,
			"failed_invoice_id": partial.FailedAt,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
