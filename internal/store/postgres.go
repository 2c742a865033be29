package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"qr-ordering/internal/database"
	"qr-ordering/internal/models"
)

// PostgresStore implements Store on top of the pgx connection pool.
// Customizations and order items are stored as JSONB.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a PostgreSQL-backed store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// GetRestaurant returns the restaurant with the given id
func (s *PostgresStore) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.QueryRow(ctx, database.GetRestaurantSQL, id).Scan(
		&r.ID, &r.Name, &r.Description, &r.Address, &r.Phone, &r.IsOpen,
		&r.BusinessHours.Open, &r.BusinessHours.Close,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &r, nil
}

// ListTables returns the restaurant's tables ordered by table number
func (s *PostgresStore) ListTables(ctx context.Context, restaurantID string) ([]models.Table, error) {
	rows, err := s.db.Query(ctx, database.GetTablesSQL, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.RestaurantID, &t.QRCode, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// GetTableByQRCode resolves a scanned QR code to its table
func (s *PostgresStore) GetTableByQRCode(ctx context.Context, qrCode string) (*models.Table, error) {
	var t models.Table
	err := s.db.QueryRow(ctx, database.GetTableByQRCodeSQL, qrCode).Scan(
		&t.ID, &t.Number, &t.RestaurantID, &t.QRCode, &t.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return &t, nil
}

// ListCategories returns the restaurant's categories in display order
func (s *PostgresStore) ListCategories(ctx context.Context, restaurantID string) ([]models.Category, error) {
	rows, err := s.db.Query(ctx, database.GetCategoriesSQL, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.RestaurantID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListMenuItems returns all menu items of a restaurant
func (s *PostgresStore) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	rows, err := s.db.Query(ctx, database.GetMenuItemsSQL, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetMenuItem returns the menu item with the given id
func (s *PostgresStore) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	item, err := scanMenuItem(s.db.QueryRow(ctx, database.GetMenuItemSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

// CreateMenuItem stores a new menu item
func (s *PostgresStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	customizations, err := json.Marshal(item.Customizations)
	if err != nil {
		return fmt.Errorf("failed to marshal customizations: %w", err)
	}
	return s.db.Exec(ctx, database.InsertMenuItemSQL,
		item.ID, item.Name, item.Description, item.Price, item.Image,
		item.CategoryID, item.RestaurantID, item.IsAvailable, customizations,
	)
}

// UpdateMenuItem applies a partial update to a menu item
func (s *PostgresStore) UpdateMenuItem(ctx context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := scanMenuItem(s.db.QueryRow(ctx, database.UpdateMenuItemSQL,
		id, req.Name, req.Description, req.Price, req.IsAvailable,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

// DeleteMenuItem removes a menu item
func (s *PostgresStore) DeleteMenuItem(ctx context.Context, id string) error {
	tag, err := s.db.Pool.Exec(ctx, database.DeleteMenuItemSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateOrder stores a new order and its initial status log entry
func (s *PostgresStore) CreateOrder(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, database.InsertOrderSQL,
		order.ID, order.RestaurantID, order.TableNumber, items, order.TotalAmount,
		order.Status, order.PaymentStatus, order.CustomerNotes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	_, err = tx.Exec(ctx, database.InsertOrderStatusLogSQL,
		order.ID, order.Status, "order-service", "order received",
	)
	if err != nil {
		return fmt.Errorf("failed to insert status log: %w", err)
	}

	return tx.Commit(ctx)
}

// GetOrder returns the order with the given id
func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := scanOrder(s.db.QueryRow(ctx, database.GetOrderSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return order, err
}

// ListOrders returns orders matching the filter, newest first
func (s *PostgresStore) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	rows, err := s.db.Query(ctx, database.GetOrdersSQL, filter.RestaurantID, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateOrder applies status and payment-status changes and appends to the
// status log when the status changed
func (s *PostgresStore) UpdateOrder(ctx context.Context, id string, status *models.OrderStatus, payment *models.PaymentStatus, changedBy string) (*models.Order, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var statusArg, paymentArg *string
	if status != nil {
		v := string(*status)
		statusArg = &v
	}
	if payment != nil {
		v := string(*payment)
		paymentArg = &v
	}

	order, err := scanOrder(tx.QueryRow(ctx, database.UpdateOrderSQL, id, statusArg, paymentArg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if status != nil {
		_, err = tx.Exec(ctx, database.InsertOrderStatusLogSQL, id, *status, changedBy, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to insert status log: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrderHistory returns the order's status log, oldest first
func (s *PostgresStore) GetOrderHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	rows, err := s.db.Query(ctx, database.GetOrderStatusHistorySQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	history := []models.OrderStatusHistory{}
	for rows.Next() {
		var h models.OrderStatusHistory
		if err := rows.Scan(&h.Status, &h.ChangedBy, &h.ChangedAt, &h.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan status history: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		// Distinguish missing order from empty history
		if _, err := s.GetOrder(ctx, orderID); err != nil {
			return nil, err
		}
	}
	return history, nil
}

// scanMenuItem reads one menu item row, decoding the customizations JSONB
func scanMenuItem(row pgx.Row) (*models.MenuItem, error) {
	var item models.MenuItem
	var customizations []byte
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Image,
		&item.CategoryID, &item.RestaurantID, &item.IsAvailable, &customizations,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customizations: %w", err)
	}
	return &item, nil
}

// scanOrder reads one order row, decoding the items JSONB
func scanOrder(row pgx.Row) (*models.Order, error) {
	var order models.Order
	var items []byte
	var status, payment string
	err := row.Scan(
		&order.ID, &order.RestaurantID, &order.TableNumber, &items, &order.TotalAmount,
		&status, &payment, &order.PaymentMethod, &order.CustomerNotes,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = models.OrderStatus(status)
	order.PaymentStatus = models.PaymentStatus(payment)
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return &order, nil
}
