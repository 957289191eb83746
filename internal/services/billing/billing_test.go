package billing

import (
	"io"
	"testing"
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory sqlite gives every new connection its own database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Shop{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
		&models.InvoiceSequence{},
		&models.PaymentAuditLog{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	invoiceRepo := repository.NewInvoiceRepository(db)
	svc := NewService(
		invoiceRepo,
		repository.NewPaymentRepository(db),
		repository.NewProductRepository(db),
		repository.NewShopRepository(db),
		log,
		nil,
	)
	return svc, db
}

func createShop(t *testing.T, db *gorm.DB) *models.Shop {
	t.Helper()
	shop := &models.Shop{
		ID:        uuid.New(),
		Name:      "Test Shop",
		CreatedBy: uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func createInvoice(t *testing.T, db *gorm.DB, shopID uuid.UUID, number string, total float64, status string, createdAt time.Time) *models.Invoice {
	t.Helper()
	invoice := &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		ShopID:        shopID,
		TotalAmount:   total,
		PaymentStatus: status,
		CreatedBy:     uuid.New(),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, db.Create(invoice).Error)
	return invoice
}

func addPayment(t *testing.T, db *gorm.DB, invoiceID uuid.UUID, amount float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Payment{
		ID:            uuid.New(),
		InvoiceID:     invoiceID,
		Amount:        amount,
		PaymentMethod: models.MethodCash,
		PaymentDate:   time.Now(),
		CreatedBy:     uuid.New(),
		CreatedAt:     time.Now(),
	}).Error)
}

func invoiceStatus(t *testing.T, db *gorm.DB, id uuid.UUID) string {
	t.Helper()
	var invoice models.Invoice
	require.NoError(t, db.First(&invoice, "id = ?", id).Error)
	return invoice.PaymentStatus
}

func paymentCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	return count
}
