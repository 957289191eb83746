package billing

import (
	"testing"
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProduct(t *testing.T, svc *Service, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:            uuid.New(),
		Name:          "Widget",
		Price:         price,
		StockQuantity: stock,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, svc.productRepo.Create(product))
	return product
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 19.99, 10)

	result, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:         shop.ID,
		Items:          []ItemInput{{ProductID: product.ID, Quantity: 3}},
		DiscountAmount: 5.00,
		CreatedBy:      uuid.New(),
	})
	require.NoError(t, err)

	// 3 × 19.99 − 5.00
	assert.Equal(t, 54.97, result.Invoice.TotalAmount)
	assert.Equal(t, models.StatusUnpaid, result.Invoice.PaymentStatus)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 59.97, result.Items[0].Subtotal)
	assert.Equal(t, "Widget", result.Items[0].ProductName)

	// Stock decremented by the quantity sold.
	updated, err := svc.productRepo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.StockQuantity)
}

func TestCreateInvoiceAssignsSequentialNumbers(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 10.00, 100)

	first, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:    shop.ID,
		Items:     []ItemInput{{ProductID: product.ID, Quantity: 1}},
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	second, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:    shop.ID,
		Items:     []ItemInput{{ProductID: product.ID, Quantity: 1}},
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", first.Invoice.InvoiceNumber)
	assert.Equal(t, "INV-000002", second.Invoice.InvoiceNumber)
}

func TestCreateInvoiceWithInitialPayments(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 50.00, 10)

	result, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:      shop.ID,
		Items:       []ItemInput{{ProductID: product.ID, Quantity: 2}},
		CashAmount:  60.00,
		CheckAmount: 40.00,
		CheckNumber: "2001",
		CreatedBy:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.00, result.Invoice.TotalAmount)
	assert.Equal(t, models.StatusPaid, result.Invoice.PaymentStatus)

	var payments []models.Payment
	require.NoError(t, db.Find(&payments, "invoice_id = ?", result.Invoice.ID).Error)
	require.Len(t, payments, 2)

	byMethod := map[string]models.Payment{}
	for _, p := range payments {
		byMethod[p.PaymentMethod] = p
	}
	assert.Equal(t, 60.00, byMethod[models.MethodCash].Amount)
	assert.Equal(t, 40.00, byMethod[models.MethodCheck].Amount)
	assert.Equal(t, "2001", byMethod[models.MethodCheck].CheckNumber)
	assert.Empty(t, byMethod[models.MethodCash].CheckNumber)
}

func TestCreateInvoicePartialInitialPayment(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 50.00, 10)

	result, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:     shop.ID,
		Items:      []ItemInput{{ProductID: product.ID, Quantity: 2}},
		CashAmount: 30.00,
		CreatedBy:  uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPartial, result.Invoice.PaymentStatus)
}

func TestCreateInvoiceRejectsOverpayment(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 50.00, 10)

	_, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:     shop.ID,
		Items:      []ItemInput{{ProductID: product.ID, Quantity: 1}},
		CashAmount: 75.00,
		CreatedBy:  uuid.New(),
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateInvoiceRejectsExcessiveDiscount(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 20.00, 10)

	_, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:         shop.ID,
		Items:          []ItemInput{{ProductID: product.ID, Quantity: 1}},
		DiscountAmount: 25.00,
		CreatedBy:      uuid.New(),
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)

	_, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:    shop.ID,
		CreatedBy: uuid.New(),
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateInvoiceUnitPriceOverride(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)
	product := createProduct(t, svc, 50.00, 10)

	override := 45.00
	result, err := svc.CreateInvoice(CreateInvoiceInput{
		ShopID:    shop.ID,
		Items:     []ItemInput{{ProductID: product.ID, Quantity: 2, UnitPrice: &override}},
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, 90.00, result.Invoice.TotalAmount)
	assert.Equal(t, 45.00, result.Items[0].UnitPrice)
}

func TestAddLegacyBalance(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)

	invoice, err := svc.AddLegacyBalance(shop.ID, 150.00, "carried over", uuid.New())
	require.NoError(t, err)

	assert.Equal(t, models.StatusUnpaid, invoice.PaymentStatus)
	assert.Equal(t, 150.00, invoice.TotalAmount)
	assert.Equal(t, "[LEGACY BALANCE] carried over", invoice.Notes)

	// No line items behind a legacy balance.
	var items int64
	require.NoError(t, db.Model(&models.InvoiceItem{}).Count(&items).Error)
	assert.EqualValues(t, 0, items)

	// A legacy balance flows through the normal allocation machinery.
	result, err := svc.ApplyPayment(invoice.ID, PaymentInput{
		Amount:    150.00,
		Method:    models.MethodCash,
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, result.NewStatus)
}

func TestAddLegacyBalanceRejectsBadAmount(t *testing.T) {
	svc, db := newTestService(t)
	shop := createShop(t, db)

	_, err := svc.AddLegacyBalance(shop.ID, 0, "", uuid.New())
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestNextInvoiceNumberMonotonic(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.NextInvoiceNumber()
	require.NoError(t, err)
	second, err := svc.NextInvoiceNumber()
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", first)
	assert.Equal(t, "INV-000002", second)
	assert.NotEqual(t, first, second)
}
