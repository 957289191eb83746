package handlers

import (
	"net/http"
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShopHandler struct {
	repo *repository.ShopRepository
}

func NewShopHandler(repo *repository.ShopRepository) *ShopHandler {
	return &ShopHandler{repo: repo}
}

type shopPayload struct {
	Name               string `json:"name" binding:"required"`
	OwnerName          string `json:"owner_name"`
	Phone              string `json:"phone"`
	Email              string `json:"email" binding:"omitempty,email"`
	StreetAddress      string `json:"street_address"`
	StreetAddressLine2 string `json:"street_address_line_2"`
	City               string `json:"city"`
	State              string `json:"state"`
	ZipCode            string `json:"zip_code"`
	CreatedBy          string `json:"created_by"`
}

func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.repo.List(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

func (h *ShopHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}
	shop, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

func (h *ShopHandler) Create(c *gin.Context) {
	var payload shopPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	createdBy, err := uuid.Parse(payload.CreatedBy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	shop := &models.Shop{
		ID:                 uuid.New(),
		Name:               payload.Name,
		OwnerName:          payload.OwnerName,
		Phone:              payload.Phone,
		Email:              payload.Email,
		StreetAddress:      payload.StreetAddress,
		StreetAddressLine2: payload.StreetAddressLine2,
		City:               payload.City,
		State:              payload.State,
		ZipCode:            payload.ZipCode,
		CreatedBy:          createdBy,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := h.repo.Create(shop); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shop": shop})
}

func (h *ShopHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}
	shop, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var payload shopPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	shop.Name = payload.Name
	shop.OwnerName = payload.OwnerName
	shop.Phone = payload.Phone
	shop.Email = payload.Email
	shop.StreetAddress = payload.StreetAddress
	shop.StreetAddressLine2 = payload.StreetAddressLine2
	shop.City = payload.City
	shop.State = payload.State
	shop.ZipCode = payload.ZipCode
	shop.UpdatedAt = time.Now()

	if err := h.repo.Update(shop); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shop deleted"})
}
