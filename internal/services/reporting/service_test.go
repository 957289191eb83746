package reporting

import (
	"testing"
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Shop{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
		&models.Profile{},
		&models.UserRole{},
	))

	invoiceRepo := repository.NewInvoiceRepository(db)
	svc := NewService(
		invoiceRepo,
		repository.NewPaymentRepository(db),
		repository.NewProductRepository(db),
		repository.NewShopRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func seedSalesUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&models.Profile{
		ID:       id,
		Email:    name + "@example.com",
		FullName: name,
	}).Error)
	require.NoError(t, db.Create(&models.UserRole{
		ID:     uuid.New(),
		UserID: id,
		Role:   models.RoleSales,
	}).Error)
	return id
}

func seedInvoice(t *testing.T, db *gorm.DB, shopID, createdBy uuid.UUID, number string, total float64, status string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&models.Invoice{
		ID:            id,
		InvoiceNumber: number,
		ShopID:        shopID,
		TotalAmount:   total,
		PaymentStatus: status,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}).Error)
	return id
}

func seedPayment(t *testing.T, db *gorm.DB, invoiceID uuid.UUID, amount float64, method string, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Payment{
		ID:            uuid.New(),
		InvoiceID:     invoiceID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   date,
		CreatedBy:     uuid.New(),
		CreatedAt:     date,
	}).Error)
}

func TestDashboardPendingBalance(t *testing.T) {
	svc, db := newTestService(t)

	shop := models.Shop{ID: uuid.New(), Name: "Shop A", CreatedBy: uuid.New()}
	require.NoError(t, db.Create(&shop).Error)

	// $100 unpaid + $30 partial with $10 paid + $50 fully paid.
	seedInvoice(t, db, shop.ID, uuid.New(), "INV-1", 100.00, models.StatusUnpaid)
	partial := seedInvoice(t, db, shop.ID, uuid.New(), "INV-2", 30.00, models.StatusPartial)
	seedPayment(t, db, partial, 10.00, models.MethodCash, time.Now())
	paid := seedInvoice(t, db, shop.ID, uuid.New(), "INV-3", 50.00, models.StatusPaid)
	seedPayment(t, db, paid, 50.00, models.MethodCash, time.Now())

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.ShopCount)
	assert.EqualValues(t, 3, stats.InvoiceCount)
	assert.InDelta(t, 180.00, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 120.00, stats.PendingBalance, 0.001)
}

func TestDashboardTopShops(t *testing.T) {
	svc, db := newTestService(t)

	big := models.Shop{ID: uuid.New(), Name: "Big Spender", CreatedBy: uuid.New()}
	small := models.Shop{ID: uuid.New(), Name: "Small Fry", CreatedBy: uuid.New()}
	require.NoError(t, db.Create(&big).Error)
	require.NoError(t, db.Create(&small).Error)

	seedInvoice(t, db, big.ID, uuid.New(), "INV-1", 500.00, models.StatusUnpaid)
	seedInvoice(t, db, big.ID, uuid.New(), "INV-2", 300.00, models.StatusUnpaid)
	seedInvoice(t, db, small.ID, uuid.New(), "INV-3", 100.00, models.StatusUnpaid)

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	require.NotEmpty(t, stats.TopShops)
	assert.Equal(t, "Big Spender", stats.TopShops[0].ShopName)
	assert.InDelta(t, 800.00, stats.TopShops[0].Revenue, 0.001)
}

func TestSalesPerformanceAggregates(t *testing.T) {
	svc, db := newTestService(t)

	seller := seedSalesUser(t, db, "seller")
	other := seedSalesUser(t, db, "other")

	shop := models.Shop{ID: uuid.New(), Name: "Shop A", CreatedBy: seller}
	require.NoError(t, db.Create(&shop).Error)

	inv1 := seedInvoice(t, db, shop.ID, seller, "INV-1", 200.00, models.StatusPartial)
	inv2 := seedInvoice(t, db, shop.ID, seller, "INV-2", 100.00, models.StatusUnpaid)
	seedInvoice(t, db, shop.ID, other, "INV-3", 50.00, models.StatusUnpaid)

	now := time.Now()
	seedPayment(t, db, inv1, 80.00, models.MethodCash, now)
	seedPayment(t, db, inv1, 40.00, models.MethodCheck, now)
	// Outside the queried period.
	seedPayment(t, db, inv2, 25.00, models.MethodCash, now.Add(-48*time.Hour))

	metrics, err := svc.SalesPerformance(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	byName := map[string]SalesPersonMetrics{}
	for _, m := range metrics {
		byName[m.FullName] = m
	}

	sellerMetrics := byName["seller"]
	assert.Equal(t, 2, sellerMetrics.TotalInvoices)
	assert.InDelta(t, 300.00, sellerMetrics.TotalRevenue, 0.001)
	assert.InDelta(t, 120.00, sellerMetrics.Collected, 0.001)
	assert.InDelta(t, 80.00, sellerMetrics.CashCollected, 0.001)
	assert.InDelta(t, 40.00, sellerMetrics.CheckCollected, 0.001)
	assert.Equal(t, 2, sellerMetrics.PaymentCount)
	assert.Equal(t, 1, sellerMetrics.ShopCount)

	otherMetrics := byName["other"]
	assert.Equal(t, 1, otherMetrics.TotalInvoices)
	assert.InDelta(t, 0, otherMetrics.Collected, 0.001)
}

func TestSalesPerformanceNoSalesUsers(t *testing.T) {
	svc, _ := newTestService(t)

	metrics, err := svc.SalesPerformance(time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestExportInvoicesExcel(t *testing.T) {
	svc, db := newTestService(t)

	// Shop with no address on file: optional columns export blank.
	shop := models.Shop{ID: uuid.New(), Name: "Bare Shop", CreatedBy: uuid.New()}
	require.NoError(t, db.Create(&shop).Error)
	seedInvoice(t, db, shop.ID, uuid.New(), "INV-1", 75.00, models.StatusUnpaid)

	f, err := svc.ExportInvoicesExcel(nil, nil)
	require.NoError(t, err)

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-1", rows[1][0])
	assert.Equal(t, "Bare Shop", rows[1][1])
}
