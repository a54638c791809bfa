package stores_test

import (
	"testing"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuantityFold(t *testing.T) {
	// Final quantity equals the fold of the movements in commit order.
	ops := []struct {
		typ models.TxnType
		qty int
	}{
		{models.TxnIn, 50},
		{models.TxnOut, 20},
		{models.TxnIn, 5},
		{models.TxnAdjust, 12},
		{models.TxnOut, 2},
	}

	quantity := 0
	for _, op := range ops {
		next, err := stores.NextQuantity(quantity, op.typ, op.qty)
		require.NoError(t, err)
		quantity = next
	}

	assert.Equal(t, 10, quantity)
}

func TestNextQuantityOutCannotGoNegative(t *testing.T) {
	_, err := stores.NextQuantity(5, models.TxnOut, 6)
	assert.ErrorIs(t, err, stores.ErrInsufficientStock)

	next, err := stores.NextQuantity(5, models.TxnOut, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestNextQuantityRejectsBadInput(t *testing.T) {
	_, err := stores.NextQuantity(10, models.TxnType("TRANSFER"), 1)
	assert.ErrorIs(t, err, stores.ErrInvalidTxnType)

	for _, typ := range []models.TxnType{models.TxnIn, models.TxnOut, models.TxnAdjust} {
		_, err := stores.NextQuantity(10, typ, 0)
		assert.ErrorIs(t, err, stores.ErrInvalidQuantity)

		_, err = stores.NextQuantity(10, typ, -3)
		assert.ErrorIs(t, err, stores.ErrInvalidQuantity)
	}
}

func TestNextQuantityAdjustReplaces(t *testing.T) {
	next, err := stores.NextQuantity(99, models.TxnAdjust, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, next)
}
