package dashboard

import (
	"context"
	"fmt"
	"time"

	"qr-ordering/internal/analytics"
	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

// defaultPopularLimit caps the popular-items ranking when the client does
// not ask for a specific size
const defaultPopularLimit = 5

// Service computes the dashboard analytics views from stored orders
type Service struct {
	store        store.Store
	restaurantID string
}

func NewService(st store.Store, restaurantID string) *Service {
	return &Service{store: st, restaurantID: restaurantID}
}

// Summary returns today's headline numbers
func (s *Service) Summary(ctx context.Context) (analytics.Summary, error) {
	orders, err := s.orders(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(orders, time.Now()), nil
}

// Hourly returns the 24 revenue buckets of the given day
func (s *Service) Hourly(ctx context.Context, day time.Time) ([]analytics.HourlyBucket, error) {
	orders, err := s.orders(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.HourlyBuckets(orders, day), nil
}

// Weekly returns seven daily buckets ending at today
func (s *Service) Weekly(ctx context.Context) ([]analytics.DailyBucket, error) {
	orders, err := s.orders(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyBuckets(orders, time.Now()), nil
}

// Popular returns the top ordered items across all stored orders
func (s *Service) Popular(ctx context.Context, limit int) ([]analytics.PopularItem, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	orders, err := s.orders(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.PopularItems(orders, limit), nil
}

func (s *Service) orders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.store.ListOrders(ctx, store.OrderFilter{RestaurantID: s.restaurantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
