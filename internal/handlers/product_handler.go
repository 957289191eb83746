package handlers

import (
	"net/http"
	"time"

	"shop-backoffice-backend/internal/models"
	"shop-backoffice-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	repo *repository.ProductRepository
}

func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

type productPayload struct {
	Name              string  `json:"name" binding:"required"`
	Price             float64 `json:"price" binding:"required,gte=0"`
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory"`
	SubSubcategory    string  `json:"sub_subcategory"`
	StockQuantity     int     `json:"stock_quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	ImageURL          string  `json:"image_url"`
	IsActive          *bool   `json:"is_active"`
}

func (h *ProductHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") != "false"
	products, err := h.repo.List(activeOnly, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.repo.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var payload productPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}
	product := &models.Product{
		ID:                uuid.New(),
		Name:              payload.Name,
		Price:             payload.Price,
		Category:          payload.Category,
		Subcategory:       payload.Subcategory,
		SubSubcategory:    payload.SubSubcategory,
		StockQuantity:     payload.StockQuantity,
		LowStockThreshold: payload.LowStockThreshold,
		ImageURL:          payload.ImageURL,
		IsActive:          active,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := h.repo.Create(product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	product, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var payload productPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product.Name = payload.Name
	product.Price = payload.Price
	product.Category = payload.Category
	product.Subcategory = payload.Subcategory
	product.SubSubcategory = payload.SubSubcategory
	product.StockQuantity = payload.StockQuantity
	product.LowStockThreshold = payload.LowStockThreshold
	product.ImageURL = payload.ImageURL
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	var payload struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.repo.AdjustStock(h.repo.DB(), id, payload.Delta); err != nil {
		respondError(c, err)
		return
	}
	product, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
