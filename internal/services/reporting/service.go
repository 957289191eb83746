package reporting

import (
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"
	"shop-backoffice-backend/internal/services/billing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	invoiceRepo *repository.InvoiceRepository
	paymentRepo *repository.PaymentRepository
	productRepo *repository.ProductRepository
	shopRepo    *repository.ShopRepository
	userRepo    *repository.UserRepository
	db          *gorm.DB
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	paymentRepo *repository.PaymentRepository,
	productRepo *repository.ProductRepository,
	shopRepo *repository.ShopRepository,
	userRepo *repository.UserRepository,
) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		db:          invoiceRepo.DB(),
	}
}

type DashboardStats struct {
	ProductCount   int64            `json:"product_count"`
	ShopCount      int64            `json:"shop_count"`
	InvoiceCount   int64            `json:"invoice_count"`
	TotalRevenue   float64          `json:"total_revenue"`
	PendingBalance float64          `json:"pending_balance"`
	TopShops       []ShopRevenue    `json:"top_shops"`
	LowStock       []models.Product `json:"low_stock"`
}

type ShopRevenue struct {
	ShopID   uuid.UUID `json:"shop_id"`
	ShopName string    `json:"shop_name"`
	Revenue  float64   `json:"revenue"`
}

// Dashboard assembles the landing-page counters: catalog and shop counts,
// revenue, outstanding balance across unpaid/partial invoices, top shops by
// invoiced revenue and the low-stock alert list.
func (s *Service) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ProductCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Shop{}).Count(&stats.ShopCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Invoice{}).Count(&stats.InvoiceCount).Error; err != nil {
		return nil, err
	}

	var revenue *float64
	if err := s.db.Model(&models.Invoice{}).
		Select("SUM(total_amount)").Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	pending, err := s.pendingBalance()
	if err != nil {
		return nil, err
	}
	stats.PendingBalance = pending

	if err := s.db.Model(&models.Invoice{}).
		Select("invoices.shop_id, shops.name AS shop_name, SUM(invoices.total_amount) AS revenue").
		Joins("JOIN shops ON shops.id = invoices.shop_id").
		Group("invoices.shop_id, shops.name").
		Order("revenue DESC").
		Limit(5).
		Scan(&stats.TopShops).Error; err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.LowStock()
	if err != nil {
		return nil, err
	}
	stats.LowStock = lowStock

	return &stats, nil
}

// pendingBalance sums remaining balances over all outstanding invoices.
func (s *Service) pendingBalance() (float64, error) {
	var invoices []models.Invoice
	err := s.db.
		Where("payment_status IN ?", []string{models.StatusUnpaid, models.StatusPartial}).
		Find(&invoices).Error
	if err != nil {
		return 0, err
	}

	pending := 0.0
	for _, inv := range invoices {
		payments, err := s.paymentRepo.ListByInvoice(inv.ID)
		if err != nil {
			return 0, err
		}
		remaining := billing.Remaining(inv.TotalAmount, payments)
		if remaining > 0 {
			pending += remaining
		}
	}
	return pending, nil
}

type SalesPersonMetrics struct {
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	TotalInvoices  int       `json:"total_invoices"`
	TotalRevenue   float64   `json:"total_revenue"`
	Collected      float64   `json:"collected_in_period"`
	CashCollected  float64   `json:"cash_collected"`
	CheckCollected float64   `json:"check_collected"`
	PaymentCount   int       `json:"payment_count"`
	ShopCount      int       `json:"shop_count"`
}

// SalesPerformance computes per-salesperson metrics for a period: lifetime
// invoice count and revenue, plus collections inside the period broken down
// by method.
func (s *Service) SalesPerformance(from, to time.Time) ([]SalesPersonMetrics, error) {
	salesIDs, err := s.userRepo.UserIDsByRole(models.RoleSales)
	if err != nil {
		return nil, err
	}
	if len(salesIDs) == 0 {
		return []SalesPersonMetrics{}, nil
	}

	var profiles []models.Profile
	if err := s.db.Where("id IN ?", salesIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.db.Where("created_by IN ?", salesIDs).Find(&invoices).Error; err != nil {
		return nil, err
	}

	periodPayments, err := s.paymentRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	var shops []models.Shop
	if err := s.db.Where("created_by IN ?", salesIDs).Find(&shops).Error; err != nil {
		return nil, err
	}

	invoiceOwner := make(map[uuid.UUID]uuid.UUID, len(invoices))
	for _, inv := range invoices {
		invoiceOwner[inv.ID] = inv.CreatedBy
	}

	metrics := make([]SalesPersonMetrics, 0, len(profiles))
	for _, profile := range profiles {
		m := SalesPersonMetrics{
			UserID:   profile.ID,
			FullName: profile.FullName,
			Email:    profile.Email,
		}

		for _, inv := range invoices {
			if inv.CreatedBy == profile.ID {
				m.TotalInvoices++
				m.TotalRevenue += inv.TotalAmount
			}
		}

		for _, p := range periodPayments {
			if invoiceOwner[p.InvoiceID] != profile.ID {
				continue
			}
			m.Collected += p.Amount
			m.PaymentCount++
			switch p.PaymentMethod {
			case models.MethodCash:
				m.CashCollected += p.Amount
			case models.MethodCheck:
				m.CheckCollected += p.Amount
			}
		}

		for _, shop := range shops {
			if shop.CreatedBy == profile.ID {
				m.ShopCount++
			}
		}

		metrics = append(metrics, m)
	}
	return metrics, nil
}
