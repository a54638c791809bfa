package models

import "time"

// Sale is an append-only record of a completed sale. Amount captures
// quantity times the item's sale price at commit time, so later price
// changes do not rewrite history.
type Sale struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"uniqueIndex;size:64;not null" json:"reference"`
	ItemID    uint      `gorm:"not null;index" json:"itemId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	UserID    uint      `gorm:"not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
