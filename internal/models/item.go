package models

import "time"

// Item is a stocked product. Quantity is the single source of truth for
// the current stock level; it only changes together with a ledger entry
// (InventoryTxn or Sale) inside the same database transaction.
type Item struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	SKU           string    `gorm:"uniqueIndex;size:100;not null" json:"sku"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	ReorderLevel  int       `gorm:"not null" json:"reorderLevel"`
	PurchasePrice float64   `gorm:"type:decimal(10,2)" json:"purchasePrice"`
	SalePrice     float64   `gorm:"type:decimal(10,2)" json:"salePrice"`
	CategoryID    *uint     `json:"categoryId"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"-"`
}

// LowOnStock reports whether the item sits at or below its reorder level.
func (i *Item) LowOnStock() bool {
	return i.Quantity <= i.ReorderLevel
}
