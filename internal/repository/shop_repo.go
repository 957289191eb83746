package repository

import (
	"strings"

	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) GetByID(id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// List returns shops ordered by name, optionally filtered by a name search.
func (r *ShopRepository) List(search string) ([]models.Shop, error) {
	var shops []models.Shop
	query := r.db.Order("name ASC")
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := query.Find(&shops).Error
	return shops, err
}

func (r *ShopRepository) Create(shop *models.Shop) error {
	return r.db.Create(shop).Error
}

func (r *ShopRepository) Update(shop *models.Shop) error {
	return r.db.Save(shop).Error
}

func (r *ShopRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shop{}, "id = ?", id).Error
}
