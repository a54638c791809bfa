package stores_test

import (
	"testing"
	"time"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesByDayZeroFillsThirtyDays(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)

	days := stores.SalesByDay(nil, now)

	require.Len(t, days, 30)
	assert.Equal(t, "2024-03-02", days[0].Date)
	assert.Equal(t, "2024-03-31", days[29].Date)
	for _, d := range days {
		assert.Zero(t, d.Amount)
	}
}

func TestSalesByDaySumsPerDay(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		{Amount: 3.5, CreatedAt: time.Date(2024, 3, 30, 9, 0, 0, 0, time.UTC)},
		{Amount: 7.0, CreatedAt: time.Date(2024, 3, 30, 18, 30, 0, 0, time.UTC)},
		{Amount: 2.0, CreatedAt: time.Date(2024, 3, 31, 1, 0, 0, 0, time.UTC)},
	}

	days := stores.SalesByDay(sales, now)

	require.Len(t, days, 30)
	assert.Equal(t, stores.DailySales{Date: "2024-03-30", Amount: 10.5}, days[28])
	assert.Equal(t, stores.DailySales{Date: "2024-03-31", Amount: 2.0}, days[29])
}

func TestSalesByDayIgnoresSalesOutsideWindow(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		{Amount: 99.0, CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)},
	}

	days := stores.SalesByDay(sales, now)
	for _, d := range days {
		assert.Zero(t, d.Amount)
	}
}
