package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"smartbiz-confirm/internal/domain"
)

type DailySales struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

type DashboardStats struct {
	TotalSales   float64                    `json:"totalSales"`
	OrderCount   int                        `json:"orderCount"`
	StatusCounts map[domain.OrderStatus]int `json:"statusCounts"`
	SalesByDay   []DailySales               `json:"salesByDay"`
}

// DashboardStats aggregates persisted orders for the dashboard. Cancelled
// orders count toward the order total but not toward sales.
func (s *OrderService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, StatsCacheKey).Result()
		if err == nil {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := buildStats(orders)

	if s.redisClient != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.redisClient.Set(ctx, StatsCacheKey, data, 10*time.Second)
		}
	}

	return stats, nil
}

func buildStats(orders []domain.Order) *DashboardStats {
	stats := &DashboardStats{
		OrderCount:   len(orders),
		StatusCounts: make(map[domain.OrderStatus]int),
	}

	salesByDate := make(map[string]float64)
	for _, o := range orders {
		stats.StatusCounts[o.Status]++
		if o.Status == domain.StatusCancelled {
			continue
		}
		stats.TotalSales += o.Total
		date := o.CreatedAt.UTC().Format("2006-01-02")
		salesByDate[date] += o.Total
	}

	dates := make([]string, 0, len(salesByDate))
	for date := range salesByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > 7 {
		dates = dates[len(dates)-7:]
	}

	for _, date := range dates {
		stats.SalesByDay = append(stats.SalesByDay, DailySales{Date: date, Sales: salesByDate[date]})
	}

	return stats
}
