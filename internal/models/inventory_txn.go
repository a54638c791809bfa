package models

import "time"

// TxnType classifies an inventory movement. IN and OUT carry a delta,
// ADJUST carries the target absolute quantity.
type TxnType string

const (
	TxnIn     TxnType = "IN"
	TxnOut    TxnType = "OUT"
	TxnAdjust TxnType = "ADJUST"
)

func (t TxnType) Valid() bool {
	switch t {
	case TxnIn, TxnOut, TxnAdjust:
		return true
	}
	return false
}

// InventoryTxn is an append-only ledger entry explaining one change to an
// item's quantity. Rows are never updated or deleted.
type InventoryTxn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"not null;index" json:"itemId"`
	Type      TxnType   `gorm:"type:varchar(10);not null" json:"type"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
