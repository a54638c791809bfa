package stores

import (
	"time"

	"github.com/devicepro80/dhstore/internal/models"

	"gorm.io/gorm"
)

// DailySales is one day's total sale amount.
type DailySales struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Overview is the dashboard summary: one entry per calendar day for the
// last 30 days (zero-filled), plus the count of low-stock items.
type Overview struct {
	SalesByDay []DailySales `json:"salesByDay"`
	LowStock   int64        `json:"lowStock"`
}

// AnalyticsStore computes the dashboard overview. A pure read,
// recomputed from scratch on every call.
type AnalyticsStore interface {
	Overview() (*Overview, error)
}

const overviewDays = 30

// SalesByDay buckets sales into per-day totals for the 30 calendar days
// ending at now (UTC), oldest first, with zero entries for days without
// sales.
func SalesByDay(sales []models.Sale, now time.Time) []DailySales {
	totals := make(map[string]float64, len(sales))
	for _, s := range sales {
		day := s.CreatedAt.UTC().Format("2006-01-02")
		totals[day] += s.Amount
	}

	days := make([]DailySales, 0, overviewDays)
	for i := overviewDays - 1; i >= 0; i-- {
		day := now.UTC().AddDate(0, 0, -i).Format("2006-01-02")
		days = append(days, DailySales{Date: day, Amount: totals[day]})
	}
	return days
}

// GormAnalyticsStore implements AnalyticsStore using GORM.
type GormAnalyticsStore struct{ DB *gorm.DB }

func (s *GormAnalyticsStore) Overview() (*Overview, error) {
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -(overviewDays - 1)).Truncate(24 * time.Hour)

	var sales []models.Sale
	if err := s.DB.Where("created_at >= ?", since).Find(&sales).Error; err != nil {
		return nil, err
	}

	var lowStock int64
	if err := s.DB.Model(&models.Item{}).
		Where("quantity <= reorder_level").
		Count(&lowStock).Error; err != nil {
		return nil, err
	}

	return &Overview{
		SalesByDay: SalesByDay(sales, now),
		LowStock:   lowStock,
	}, nil
}
