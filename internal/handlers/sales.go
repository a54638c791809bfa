package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devicepro80/dhstore/internal/middleware"
	"github.com/devicepro80/dhstore/internal/stores"
)

type RecordSaleRequest struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity"`
}

type SaleHandler struct {
	Sales    stores.SaleStore
	Notifier LowStockNotifier
}

func NewSaleHandler(sales stores.SaleStore, notifier LowStockNotifier) *SaleHandler {
	return &SaleHandler{Sales: sales, Notifier: notifier}
}

// RecordSale creates a sale attributed to the authenticated user and
// decrements stock in the same atomic unit. Quantity defaults to 1.
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	sale, err := h.Sales.Record(req.ItemID, quantity, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, stores.ErrInsufficientStock),
			errors.Is(err, stores.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale"})
		}
		return
	}

	h.Notifier.Enqueue(sale.ItemID)
	c.JSON(http.StatusCreated, sale)
}
