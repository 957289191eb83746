// Seeds an admin user and a small demo dataset. Intended for fresh
// development databases only.
package main

import (
	"time"

	"shop-backoffice-backend/internal/config"
	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	log := config.GetLogger()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on system env")
	}

	db := config.InitDB()
	db.AutoMigrate(
		&models.Shop{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
		&models.InvoiceSequence{},
		&models.PaymentAuditLog{},
		&models.Profile{},
		&models.UserRole{},
	)

	admin := models.Profile{
		ID:        uuid.New(),
		Email:     "admin@example.com",
		FullName:  "Admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.FirstOrCreate(&admin, models.Profile{Email: admin.Email}).Error; err != nil {
		log.Fatalf("seed admin profile: %v", err)
	}
	role := models.UserRole{
		ID:     uuid.New(),
		UserID: admin.ID,
		Role:   models.RoleAdmin,
	}
	if err := db.FirstOrCreate(&role, models.UserRole{UserID: admin.ID}).Error; err != nil {
		log.Fatalf("seed admin role: %v", err)
	}

	products := []models.Product{
		{ID: uuid.New(), Name: "House Blend 1kg", Price: 18.50, Category: "coffee", StockQuantity: 120, LowStockThreshold: 20, IsActive: true},
		{ID: uuid.New(), Name: "Espresso Roast 1kg", Price: 21.00, Category: "coffee", StockQuantity: 80, LowStockThreshold: 20, IsActive: true},
		{ID: uuid.New(), Name: "Paper Cups 12oz (500)", Price: 34.99, Category: "supplies", StockQuantity: 40, LowStockThreshold: 10, IsActive: true},
	}
	for i := range products {
		if err := db.FirstOrCreate(&products[i], models.Product{Name: products[i].Name}).Error; err != nil {
			log.Fatalf("seed product: %v", err)
		}
	}

	shop := models.Shop{
		ID:        uuid.New(),
		Name:      "Corner Deli",
		OwnerName: "Sam Ortiz",
		City:      "Springfield",
		State:     "IL",
		CreatedBy: admin.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.FirstOrCreate(&shop, models.Shop{Name: shop.Name}).Error; err != nil {
		log.Fatalf("seed shop: %v", err)
	}

	log.Info("seed complete")
}
