package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/stores"
)

// LowStockNotifier receives the id of an item whose quantity just
// changed. Implementations must not block and must never fail the
// request.
type LowStockNotifier interface {
	Enqueue(itemID uint)
}

type RecordTxnRequest struct {
	ItemID   uint           `json:"itemId" binding:"required"`
	Type     models.TxnType `json:"type" binding:"required"`
	Quantity int            `json:"quantity" binding:"required"`
	Note     string         `json:"note"`
}

type InventoryHandler struct {
	Txns     stores.TxnStore
	Notifier LowStockNotifier
}

func NewInventoryHandler(txns stores.TxnStore, notifier LowStockNotifier) *InventoryHandler {
	return &InventoryHandler{Txns: txns, Notifier: notifier}
}

// RecordTxn appends a ledger entry and applies it to the item's quantity
// as one atomic unit, then hands the item to the low-stock notifier.
func (h *InventoryHandler) RecordTxn(c *gin.Context) {
	var req RecordTxnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, item, err := h.Txns.Record(req.ItemID, req.Type, req.Quantity, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, stores.ErrInvalidTxnType),
			errors.Is(err, stores.ErrInvalidQuantity),
			errors.Is(err, stores.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record transaction"})
		}
		return
	}

	h.Notifier.Enqueue(item.ID)
	c.JSON(http.StatusOK, gin.H{"txn": txn, "item": item})
}
