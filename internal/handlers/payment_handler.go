package handlers

import (
	"net/http"
	"time"

	"shop-backoffice-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	service *billing.Service
}

func NewPaymentHandler(service *billing.Service) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type paymentPayload struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required,payment_method"`
	CheckNumber   string  `json:"check_number"`
	Notes         string  `json:"notes"`
	PaymentDate   string  `json:"payment_date"`
	CreatedBy     string  `json:"created_by" binding:"required"`
}

func (p *paymentPayload) toInput() (billing.PaymentInput, error) {
	createdBy, err := uuid.Parse(p.CreatedBy)
	if err != nil {
		return billing.PaymentInput{}, err
	}
	input := billing.PaymentInput{
		Amount:      p.Amount,
		Method:      p.PaymentMethod,
		CheckNumber: p.CheckNumber,
		Notes:       p.Notes,
		CreatedBy:   createdBy,
	}
	if p.PaymentDate != "" {
		date, err := time.Parse(time.RFC3339, p.PaymentDate)
		if err != nil {
			return billing.PaymentInput{}, err
		}
		input.PaymentDate = date
	}
	return input, nil
}

// Record applies one payment to one invoice.
func (h *PaymentHandler) Record(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload paymentPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	input, err := payload.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.service.ApplyPayment(invoiceID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "payment recorded", "result": result})
}

// Distribute splits one payment across a shop's outstanding invoices.
func (h *PaymentHandler) Distribute(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}

	var payload paymentPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	input, err := payload.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.service.DistributePayment(shopID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "payment distributed", "result": result})
}
