package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/stores"
)

type CreateItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	SKU           string  `json:"sku" binding:"required"`
	Quantity      int     `json:"quantity" binding:"gte=0"`
	ReorderLevel  int     `json:"reorderLevel" binding:"gte=0"`
	PurchasePrice float64 `json:"purchasePrice" binding:"gte=0"`
	SalePrice     float64 `json:"salePrice" binding:"gte=0"`
	CategoryID    *uint   `json:"categoryId"`
}

type ItemHandler struct {
	Items stores.ItemStore
}

func NewItemHandler(items stores.ItemStore) *ItemHandler {
	return &ItemHandler{Items: items}
}

// Search lists items, filtered by the q query parameter when present.
func (h *ItemHandler) Search(c *gin.Context) {
	items, err := h.Items.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.Item{
		Name:          req.Name,
		SKU:           req.SKU,
		Quantity:      req.Quantity,
		ReorderLevel:  req.ReorderLevel,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		CategoryID:    req.CategoryID,
	}
	if err := h.Items.Create(item); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "SKU already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// LowStock lists the items at or below their reorder level.
func (h *ItemHandler) LowStock(c *gin.Context) {
	items, err := h.Items.LowStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, items)
}
