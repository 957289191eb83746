package repository

import (
	"shop-backoffice-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetProfile(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) ListProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("full_name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *UserRepository) GetRole(userID uuid.UUID) (*models.UserRole, error) {
	var role models.UserRole
	if err := r.db.First(&role, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UserIDsByRole returns the ids of every user holding the given role.
func (r *UserRepository) UserIDsByRole(role string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.UserRole{}).Where("role = ?", role).Pluck("user_id", &ids).Error
	return ids, err
}

func (r *UserRepository) CreateProfile(tx *gorm.DB, profile *models.Profile) error {
	return tx.Create(profile).Error
}

// SetRole inserts or updates the single role row for a user.
func (r *UserRepository) SetRole(tx *gorm.DB, userID uuid.UUID, role string) error {
	var existing models.UserRole
	err := tx.First(&existing, "user_id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&models.UserRole{
			ID:     uuid.New(),
			UserID: userID,
			Role:   role,
		}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&existing).Update("role", role).Error
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.UserRole{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Profile{}, "id = ?", id).Error
	})
}
