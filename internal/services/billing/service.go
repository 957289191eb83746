package billing

import (
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InvoiceNotifier dispatches the post-creation invoice email. Failures are
// non-fatal to invoice creation.
type InvoiceNotifier interface {
	SendInvoice(to string, invoice *models.Invoice, shop *models.Shop, items []models.InvoiceItem, totalPaid float64) error
}

type Service struct {
	invoiceRepo *repository.InvoiceRepository
	paymentRepo *repository.PaymentRepository
	productRepo *repository.ProductRepository
	shopRepo    *repository.ShopRepository
	db          *gorm.DB
	log         *logrus.Logger
	notifier    InvoiceNotifier
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	paymentRepo *repository.PaymentRepository,
	productRepo *repository.ProductRepository,
	shopRepo *repository.ShopRepository,
	log *logrus.Logger,
	notifier InvoiceNotifier,
) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		db:          invoiceRepo.DB(),
		log:         log,
		notifier:    notifier,
	}
}

// PaymentInput carries the caller-supplied fields of one payment event.
// CreatedBy is always explicit; there is no ambient user context.
type PaymentInput struct {
	Amount      float64
	Method      string
	CheckNumber string
	Notes       string
	PaymentDate time.Time
	CreatedBy   uuid.UUID
}

func (in *PaymentInput) validate() error {
	if in.Amount <= 0 {
		return validationErrorf("please enter a valid amount")
	}
	if in.Method != models.MethodCash && in.Method != models.MethodCheck {
		return validationErrorf("payment method must be cash or check")
	}
	return nil
}

// newPayment builds the Payment row for in applied against invoiceID.
// The check number only travels with check payments.
func (in *PaymentInput) newPayment(invoiceID uuid.UUID, amount float64) *models.Payment {
	checkNumber := ""
	if in.Method == models.MethodCheck {
		checkNumber = in.CheckNumber
	}
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	return &models.Payment{
		ID:            uuid.New(),
		InvoiceID:     invoiceID,
		Amount:        amount,
		PaymentMethod: in.Method,
		CheckNumber:   checkNumber,
		Notes:         in.Notes,
		PaymentDate:   paymentDate,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     time.Now(),
	}
}
