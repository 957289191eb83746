package handlers

import (
	"net/http"
	"time"

	"shop-backoffice-backend/internal/repository"
	"shop-backoffice-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service     *billing.Service
	invoiceRepo *repository.InvoiceRepository
	paymentRepo *repository.PaymentRepository
}

func NewInvoiceHandler(service *billing.Service, invoiceRepo *repository.InvoiceRepository, paymentRepo *repository.PaymentRepository) *InvoiceHandler {
	return &InvoiceHandler{service: service, invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var shopID *uuid.UUID
	if raw := c.Query("shop_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
			return
		}
		shopID = &id
	}

	var statuses []string
	if status := c.Query("status"); status != "" && status != "all" {
		statuses = []string{status}
	}

	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	invoices, err := h.invoiceRepo.SearchInvoices(shopID, statuses, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.invoiceRepo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.invoiceRepo.ItemsByInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	payments, err := h.paymentRepo.ListByInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice":   invoice,
		"items":     items,
		"payments":  payments,
		"remaining": billing.Remaining(invoice.TotalAmount, payments),
	})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		ShopID string `json:"shop_id" binding:"required"`
		Items  []struct {
			ProductID string   `json:"product_id" binding:"required"`
			Quantity  int      `json:"quantity" binding:"required"`
			UnitPrice *float64 `json:"unit_price"`
		} `json:"items" binding:"required"`
		DiscountAmount float64 `json:"discount_amount"`
		Notes          string  `json:"notes"`
		CashAmount     float64 `json:"cash_amount"`
		CheckAmount    float64 `json:"check_amount"`
		CheckNumber    string  `json:"check_number"`
		CreatedBy      string  `json:"created_by" binding:"required"`
		SendEmail      bool    `json:"send_email"`
		EmailTo        string  `json:"email_to"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	shopID, err := uuid.Parse(payload.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}
	createdBy, err := uuid.Parse(payload.CreatedBy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	input := billing.CreateInvoiceInput{
		ShopID:         shopID,
		DiscountAmount: payload.DiscountAmount,
		Notes:          payload.Notes,
		CashAmount:     payload.CashAmount,
		CheckAmount:    payload.CheckAmount,
		CheckNumber:    payload.CheckNumber,
		CreatedBy:      createdBy,
		SendEmail:      payload.SendEmail,
		EmailTo:        payload.EmailTo,
	}
	for _, item := range payload.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}
		input.Items = append(input.Items, billing.ItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	result, err := h.service.CreateInvoice(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *InvoiceHandler) AddLegacyBalance(c *gin.Context) {
	var payload struct {
		ShopID    string  `json:"shop_id" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Notes     string  `json:"notes"`
		CreatedBy string  `json:"created_by" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	shopID, err := uuid.Parse(payload.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}
	createdBy, err := uuid.Parse(payload.CreatedBy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	invoice, err := h.service.AddLegacyBalance(shopID, payload.Amount, payload.Notes, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

func parseDateRange(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromRaw != "" {
		t, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if toRaw != "" {
		t, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
