// Package store defines the storage interface behind the ordering service
// and its in-memory and PostgreSQL implementations. The analytics and cart
// cores never touch a store directly; they receive already-fetched
// collections.
package store

import (
	"context"
	"errors"

	"qr-ordering/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// OrderFilter narrows ListOrders results
type OrderFilter struct {
	RestaurantID string
	Status       models.OrderStatus
}

// Store is the storage interface for the ordering service
type Store interface {
	// Restaurant and tables
	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	ListTables(ctx context.Context, restaurantID string) ([]models.Table, error)
	GetTableByQRCode(ctx context.Context, qrCode string) (*models.Table, error)

	// Menu
	ListCategories(ctx context.Context, restaurantID string) ([]models.Category, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error

	// Orders. Orders are never deleted; they only advance through status
	// and payment-status updates.
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, status *models.OrderStatus, payment *models.PaymentStatus, changedBy string) (*models.Order, error)
	GetOrderHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error)
}
