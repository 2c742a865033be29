package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-ordering/internal/models"
)

func seededStore() *MemoryStore {
	s := NewMemoryStore()
	s.Seed()
	return s
}

func demoOrder(id, table string, status models.OrderStatus, created time.Time) *models.Order {
	return &models.Order{
		ID:           id,
		RestaurantID: DemoRestaurantID,
		TableNumber:  table,
		Items: []models.CartItem{
			{MenuItem: models.MenuItem{ID: "1", Name: "Braised Pork Rice", Price: 80}, Quantity: 1},
		},
		TotalAmount:   80,
		Status:        status,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestSeed(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	restaurant, err := s.GetRestaurant(ctx, DemoRestaurantID)
	require.NoError(t, err)
	assert.Equal(t, "Delicious Corner", restaurant.Name)

	categories, err := s.ListCategories(ctx, DemoRestaurantID)
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	items, err := s.ListMenuItems(ctx, DemoRestaurantID)
	require.NoError(t, err)
	assert.Len(t, items, 7)

	tables, err := s.ListTables(ctx, DemoRestaurantID)
	require.NoError(t, err)
	assert.Len(t, tables, 4)
}

func TestGetTableByQRCode(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	table, err := s.GetTableByQRCode(ctx, "table-2-qr")
	require.NoError(t, err)
	assert.Equal(t, "2", table.Number)

	_, err = s.GetTableByQRCode(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuItemCRUD(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	item := &models.MenuItem{
		ID:           "new-item",
		Name:         "Scallion Pancake",
		Price:        45,
		CategoryID:   "1",
		RestaurantID: DemoRestaurantID,
		IsAvailable:  true,
	}
	require.NoError(t, s.CreateMenuItem(ctx, item))

	got, err := s.GetMenuItem(ctx, "new-item")
	require.NoError(t, err)
	assert.Equal(t, "Scallion Pancake", got.Name)

	newPrice := 50.0
	unavailable := false
	updated, err := s.UpdateMenuItem(ctx, "new-item", &models.UpdateMenuItemRequest{
		Price:       &newPrice,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.InDelta(t, 50, updated.Price, 0.0001)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Scallion Pancake", updated.Name)

	require.NoError(t, s.DeleteMenuItem(ctx, "new-item"))
	_, err = s.GetMenuItem(ctx, "new-item")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteMenuItem(ctx, "new-item")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderRecordsHistory(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	require.NoError(t, s.CreateOrder(ctx, demoOrder("o1", "3", models.StatusPending, time.Now())))

	history, err := s.GetOrderHistory(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.StatusPending, history[0].Status)
}

func TestListOrders_FilterAndOrdering(t *testing.T) {
	s := seededStore()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	require.NoError(t, s.CreateOrder(ctx, demoOrder("o1", "1", models.StatusPending, base)))
	require.NoError(t, s.CreateOrder(ctx, demoOrder("o2", "2", models.StatusCompleted, base.Add(time.Minute))))
	require.NoError(t, s.CreateOrder(ctx, demoOrder("o3", "3", models.StatusPending, base.Add(2*time.Minute))))

	all, err := s.ListOrders(ctx, OrderFilter{RestaurantID: DemoRestaurantID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, "o3", all[0].ID)
	assert.Equal(t, "o1", all[2].ID)

	pending, err := s.ListOrders(ctx, OrderFilter{RestaurantID: DemoRestaurantID, Status: models.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, o := range pending {
		assert.Equal(t, models.StatusPending, o.Status)
	}
}

func TestUpdateOrder(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	require.NoError(t, s.CreateOrder(ctx, demoOrder("o1", "1", models.StatusPending, time.Now())))

	confirmed := models.StatusConfirmed
	paid := models.PaymentPaid
	updated, err := s.UpdateOrder(ctx, "o1", &confirmed, &paid, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	history, err := s.GetOrderHistory(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusConfirmed, history[1].Status)
	assert.Equal(t, "dashboard", history[1].ChangedBy)

	_, err = s.UpdateOrder(ctx, "missing", &confirmed, nil, "dashboard")
	assert.ErrorIs(t, err, ErrNotFound)
}
