package handlers_test

import (
	"net/http"
	"testing"

	"github.com/devicepro80/dhstore/internal/handlers"
	"github.com/devicepro80/dhstore/internal/mocks"
	"github.com/devicepro80/dhstore/internal/stores"

	"github.com/stretchr/testify/assert"
)

func TestOverview(t *testing.T) {
	w, ctx := getCtx("/analytics/overview")

	analytics := new(mocks.AnalyticsStore)
	analytics.On("Overview").Return(&stores.Overview{
		SalesByDay: []stores.DailySales{{Date: "2024-03-31", Amount: 10.5}},
		LowStock:   2,
	}, nil)

	h := handlers.NewAnalyticsHandler(analytics)
	h.Overview(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lowStock":2`)
	assert.Contains(t, w.Body.String(), "2024-03-31")
	analytics.AssertExpectations(t)
}
