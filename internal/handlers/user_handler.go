package handlers

import (
	"net/http"
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserHandler provisions users and their roles. Authentication itself lives
// outside this service; here a user is a profile row plus a single role.
type UserHandler struct {
	repo *repository.UserRepository
	db   *gorm.DB
}

func NewUserHandler(repo *repository.UserRepository, db *gorm.DB) *UserHandler {
	return &UserHandler{repo: repo, db: db}
}

func (h *UserHandler) List(c *gin.Context) {
	profiles, err := h.repo.ListProfiles()
	if err != nil {
		respondError(c, err)
		return
	}

	type userWithRole struct {
		models.Profile
		Role string `json:"role"`
	}
	users := make([]userWithRole, 0, len(profiles))
	for _, profile := range profiles {
		entry := userWithRole{Profile: profile}
		if role, err := h.repo.GetRole(profile.ID); err == nil {
			entry.Role = role.Role
		}
		users = append(users, entry)
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Create(c *gin.Context) {
	var payload struct {
		Email    string `json:"email" binding:"required,email"`
		FullName string `json:"full_name" binding:"required"`
		Role     string `json:"role" binding:"required,app_role"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	profile := &models.Profile{
		ID:        uuid.New(),
		Email:     payload.Email,
		FullName:  payload.FullName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := h.repo.CreateProfile(tx, profile); err != nil {
			return err
		}
		return h.repo.SetRole(tx, profile.ID, payload.Role)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": profile, "role": payload.Role})
}

func (h *UserHandler) SetRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var payload struct {
		Role string `json:"role" binding:"required,app_role"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.repo.SetRole(h.db, userID, payload.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if err := h.repo.Delete(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
