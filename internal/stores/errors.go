package stores

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by the store implementations. Handlers translate
// these into HTTP statuses; nothing here knows about HTTP.
var (
	ErrNotFound          = gorm.ErrRecordNotFound
	ErrDuplicate         = gorm.ErrDuplicatedKey
	ErrInvalidTxnType    = errors.New("invalid transaction type")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrInsufficientStock = errors.New("insufficient stock")
)
