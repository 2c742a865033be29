package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"qr-ordering/internal/models"
)

// MemoryStore is a mutex-guarded in-memory Store used for the demo and for
// tests. NewMemoryStore returns an empty store; Seed loads the demo fixture.
type MemoryStore struct {
	mu          sync.RWMutex
	restaurants map[string]models.Restaurant
	categories  map[string]models.Category
	menuItems   map[string]models.MenuItem
	tables      map[string]models.Table
	orders      map[string]models.Order
	history     map[string][]models.OrderStatusHistory
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		restaurants: make(map[string]models.Restaurant),
		categories:  make(map[string]models.Category),
		menuItems:   make(map[string]models.MenuItem),
		tables:      make(map[string]models.Table),
		orders:      make(map[string]models.Order),
		history:     make(map[string][]models.OrderStatusHistory),
	}
}

// GetRestaurant returns the restaurant with the given id
func (s *MemoryStore) GetRestaurant(_ context.Context, id string) (*models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// ListTables returns the restaurant's tables ordered by table number
func (s *MemoryStore) ListTables(_ context.Context, restaurantID string) ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tables := []models.Table{}
	for _, t := range s.tables {
		if t.RestaurantID == restaurantID {
			tables = append(tables, t)
		}
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Number < tables[j].Number })
	return tables, nil
}

// GetTableByQRCode resolves a scanned QR code to its table
func (s *MemoryStore) GetTableByQRCode(_ context.Context, qrCode string) (*models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tables {
		if t.QRCode == qrCode {
			table := t
			return &table, nil
		}
	}
	return nil, ErrNotFound
}

// ListCategories returns the restaurant's categories in display order
func (s *MemoryStore) ListCategories(_ context.Context, restaurantID string) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := []models.Category{}
	for _, c := range s.categories {
		if c.RestaurantID == restaurantID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].SortOrder < categories[j].SortOrder })
	return categories, nil
}

// ListMenuItems returns all menu items of a restaurant
func (s *MemoryStore) ListMenuItems(_ context.Context, restaurantID string) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.MenuItem{}
	for _, item := range s.menuItems {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetMenuItem returns the menu item with the given id
func (s *MemoryStore) GetMenuItem(_ context.Context, id string) (*models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// CreateMenuItem stores a new menu item
func (s *MemoryStore) CreateMenuItem(_ context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menuItems[item.ID] = *item
	return nil
}

// UpdateMenuItem applies a partial update to a menu item
func (s *MemoryStore) UpdateMenuItem(_ context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	s.menuItems[id] = item
	return &item, nil
}

// DeleteMenuItem removes a menu item
func (s *MemoryStore) DeleteMenuItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.menuItems, id)
	return nil
}

// CreateOrder stores a new order and its initial status log entry
func (s *MemoryStore) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = *order
	s.history[order.ID] = []models.OrderStatusHistory{{
		Status:    order.Status,
		ChangedBy: "order-service",
		ChangedAt: order.CreatedAt,
		Notes:     "order received",
	}}
	return nil
}

// GetOrder returns the order with the given id
func (s *MemoryStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

// ListOrders returns orders matching the filter, newest first
func (s *MemoryStore) ListOrders(_ context.Context, filter OrderFilter) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := []models.Order{}
	for _, order := range s.orders {
		if filter.RestaurantID != "" && order.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

// UpdateOrder applies status and payment-status changes to an order and
// appends to its status log. Transition validation is the service's job.
func (s *MemoryStore) UpdateOrder(_ context.Context, id string, status *models.OrderStatus, payment *models.PaymentStatus, changedBy string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := time.Now().UTC()
	if status != nil && *status != order.Status {
		order.Status = *status
		s.history[id] = append(s.history[id], models.OrderStatusHistory{
			Status:    *status,
			ChangedBy: changedBy,
			ChangedAt: now,
		})
	}
	if payment != nil {
		order.PaymentStatus = *payment
	}
	order.UpdatedAt = now
	s.orders[id] = order
	return &order, nil
}

// GetOrderHistory returns the order's status log, oldest first
func (s *MemoryStore) GetOrderHistory(_ context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.orders[orderID]; !ok {
		return nil, ErrNotFound
	}
	history := make([]models.OrderStatusHistory, len(s.history[orderID]))
	copy(history, s.history[orderID])
	return history, nil
}
