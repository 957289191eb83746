package billing

import (
	"math"
	"strings"
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ItemInput is one invoice line as supplied by the caller. UnitPrice
// overrides the catalog price when set.
type ItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *float64
}

// CreateInvoiceInput carries everything needed to create an invoice. The
// payment status is never supplied by the caller; it is derived from the
// initial payment amounts.
type CreateInvoiceInput struct {
	ShopID         uuid.UUID
	Items          []ItemInput
	DiscountAmount float64
	Notes          string
	CashAmount     float64
	CheckAmount    float64
	CheckNumber    string
	CreatedBy      uuid.UUID
	SendEmail      bool
	EmailTo        string
}

// CreateInvoiceResult is the created invoice plus a non-fatal warning from
// the email dispatch, when one occurred.
type CreateInvoiceResult struct {
	Invoice *models.Invoice      `json:"invoice"`
	Items   []models.InvoiceItem `json:"items"`
	Warning string               `json:"warning,omitempty"`
}

// CreateInvoice resolves line items against the catalog, fixes the total,
// persists invoice + items + any initial payments in one transaction,
// decrements product stock, and dispatches the invoice email after commit.
// Email failure never rolls the invoice back; it comes back as a warning.
func (s *Service) CreateInvoice(in CreateInvoiceInput) (*CreateInvoiceResult, error) {
	if in.ShopID == uuid.Nil {
		return nil, validationErrorf("please select a shop")
	}
	if len(in.Items) == 0 {
		return nil, validationErrorf("please add at least one product")
	}
	if in.DiscountAmount < 0 {
		return nil, validationErrorf("discount cannot be negative")
	}
	if in.CashAmount < 0 || in.CheckAmount < 0 {
		return nil, validationErrorf("payment amounts cannot be negative")
	}

	shop, err := s.shopRepo.GetByID(in.ShopID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch shop", Err: err}
	}

	emailTo := in.EmailTo
	if emailTo == "" {
		emailTo = shop.Email
	}
	if in.SendEmail && !strings.Contains(emailTo, "@") {
		return nil, validationErrorf("please provide a valid email address to send the invoice")
	}

	items, total, err := s.resolveItems(in)
	if err != nil {
		return nil, err
	}

	initialPaid := in.CashAmount + in.CheckAmount
	if initialPaid-total > Tolerance {
		return nil, validationErrorf("payment amount cannot exceed invoice total")
	}

	number, err := s.NextInvoiceNumber()
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:             uuid.New(),
		InvoiceNumber:  number,
		ShopID:         in.ShopID,
		TotalAmount:    total,
		DiscountAmount: in.DiscountAmount,
		Notes:          in.Notes,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		initialPayments := initialPaymentRecords(invoice.ID, in)
		paid := make([]float64, len(initialPayments))
		for i, p := range initialPayments {
			paid[i] = p.Amount
		}
		invoice.PaymentStatus = DeriveStatus(total, paid)

		if err := tx.Create(invoice).Error; err != nil {
			return &PersistenceError{Op: "insert invoice", Err: err}
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return &PersistenceError{Op: "insert invoice items", Err: err}
		}
		for _, p := range initialPayments {
			if err := tx.Create(p).Error; err != nil {
				return &PersistenceError{Op: "insert payment", Err: err}
			}
		}

		// Stock decrements are best-effort: an adjustment failure is logged
		// but does not void the invoice.
		for _, item := range in.Items {
			if err := s.productRepo.AdjustStock(tx, item.ProductID, -item.Quantity); err != nil {
				s.log.WithFields(logrus.Fields{
					"product_id": item.ProductID,
					"invoice_id": invoice.ID,
				}).Warnf("stock update failed: %v", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CreateInvoiceResult{Invoice: invoice, Items: items}

	if in.SendEmail && s.notifier != nil {
		if err := s.notifier.SendInvoice(emailTo, invoice, shop, items, initialPaid); err != nil {
			warn := &NotificationError{Recipient: emailTo, Err: err}
			s.log.WithField("invoice_id", invoice.ID).Warn(warn.Error())
			result.Warning = warn.Error()
		}
	}

	s.log.WithFields(logrus.Fields{
		"invoice_number": invoice.InvoiceNumber,
		"shop_id":        invoice.ShopID,
		"total":          invoice.TotalAmount,
		"status":         invoice.PaymentStatus,
	}).Info("invoice created")

	return result, nil
}

// resolveItems prices the lines against the catalog and fixes the invoice
// total. Amounts are computed in decimal and rounded to cents before they
// are persisted.
func (s *Service) resolveItems(in CreateInvoiceInput) ([]models.InvoiceItem, float64, error) {
	items := make([]models.InvoiceItem, 0, len(in.Items))
	subtotal := decimal.Zero

	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, 0, validationErrorf("item quantity must be positive")
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, 0, &PersistenceError{Op: "fetch product", Err: err}
		}

		unitPrice := product.Price
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		}
		if unitPrice < 0 {
			return nil, 0, validationErrorf("unit price cannot be negative")
		}

		lineTotal := decimal.NewFromFloat(unitPrice).
			Mul(decimal.NewFromInt(int64(line.Quantity))).
			Round(2)
		subtotal = subtotal.Add(lineTotal)

		items = append(items, models.InvoiceItem{
			ID:          uuid.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Subtotal:    lineTotal.InexactFloat64(),
			CreatedAt:   time.Now(),
		})
	}

	discount := decimal.NewFromFloat(in.DiscountAmount).Round(2)
	if discount.GreaterThan(subtotal) {
		return nil, 0, validationErrorf("discount cannot exceed invoice subtotal")
	}

	total := math.Max(0, subtotal.Sub(discount).Round(2).InexactFloat64())
	return items, total, nil
}

func initialPaymentRecords(invoiceID uuid.UUID, in CreateInvoiceInput) []*models.Payment {
	var records []*models.Payment
	now := time.Now()
	if in.CashAmount > 0 {
		records = append(records, &models.Payment{
			ID:            uuid.New(),
			InvoiceID:     invoiceID,
			Amount:        in.CashAmount,
			PaymentMethod: models.MethodCash,
			PaymentDate:   now,
			CreatedBy:     in.CreatedBy,
			CreatedAt:     now,
		})
	}
	if in.CheckAmount > 0 {
		records = append(records, &models.Payment{
			ID:            uuid.New(),
			InvoiceID:     invoiceID,
			Amount:        in.CheckAmount,
			PaymentMethod: models.MethodCheck,
			CheckNumber:   in.CheckNumber,
			PaymentDate:   now,
			CreatedBy:     in.CreatedBy,
			CreatedAt:     now,
		})
	}
	return records
}

// AddLegacyBalance books an opening balance from pre-system records as an
// item-less unpaid invoice, so old debt flows through the same allocation
// machinery as regular invoices.
func (s *Service) AddLegacyBalance(shopID uuid.UUID, amount float64, notes string, createdBy uuid.UUID) (*models.Invoice, error) {
	if shopID == uuid.Nil {
		return nil, validationErrorf("please select a shop")
	}
	if amount <= 0 {
		return nil, validationErrorf("please enter a valid amount")
	}
	if _, err := s.shopRepo.GetByID(shopID); err != nil {
		return nil, &PersistenceError{Op: "fetch shop", Err: err}
	}

	number, err := s.NextInvoiceNumber()
	if err != nil {
		return nil, err
	}

	if notes == "" {
		notes = "Opening balance from previous records"
	}
	invoice := &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		ShopID:        shopID,
		TotalAmount:   amount,
		PaymentStatus: models.StatusUnpaid,
		Notes:         "[LEGACY BALANCE] " + notes,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.db.Create(invoice).Error; err != nil {
		return nil, &PersistenceError{Op: "insert invoice", Err: err}
	}
	return invoice, nil
}
