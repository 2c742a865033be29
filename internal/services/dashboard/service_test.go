package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

func seedOrders(t *testing.T, st *store.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	// anchor mid-day so both orders land on today's date regardless of when
	// the test runs
	y, m, d := time.Now().Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.Local)

	orders := []*models.Order{
		{
			ID: "o1", RestaurantID: store.DemoRestaurantID, TableNumber: "1",
			Items: []models.CartItem{
				{MenuItem: models.MenuItem{ID: "1", Name: "Braised Pork Rice", Price: 80}, Quantity: 3},
			},
			TotalAmount: 240, Status: models.StatusCompleted,
			CreatedAt: noon.Add(-time.Hour), UpdatedAt: noon,
		},
		{
			ID: "o2", RestaurantID: store.DemoRestaurantID, TableNumber: "2",
			Items: []models.CartItem{
				{MenuItem: models.MenuItem{ID: "6", Name: "Bubble Milk Tea", Price: 60}, Quantity: 1},
			},
			TotalAmount: 60, Status: models.StatusPending,
			CreatedAt: noon, UpdatedAt: noon,
		},
	}
	for _, o := range orders {
		require.NoError(t, st.CreateOrder(ctx, o))
	}
}

func newTestService(t *testing.T) *Service {
	st := store.NewMemoryStore()
	st.Seed()
	seedOrders(t, st)
	return NewService(st, store.DemoRestaurantID)
}

func TestSummary(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ActiveOrders)
	assert.Equal(t, 1, summary.CompletedOrders)
}

func TestHourly(t *testing.T) {
	svc := newTestService(t)

	buckets, err := svc.Hourly(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, buckets, 24)

	var orders int
	var revenue float64
	for _, b := range buckets {
		orders += b.Orders
		revenue += b.Revenue
	}
	assert.Equal(t, 2, orders)
	assert.InDelta(t, 300, revenue, 0.0001)
}

func TestWeekly(t *testing.T) {
	svc := newTestService(t)

	buckets, err := svc.Weekly(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 7)
	assert.True(t, buckets[0].Date.Before(buckets[6].Date))
}

func TestPopular(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.Popular(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Braised Pork Rice", items[0].Name)
	assert.Equal(t, 3, items[0].Count)

	// non-positive limits fall back to the default
	items, err = svc.Popular(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
