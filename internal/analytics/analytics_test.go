package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-ordering/internal/models"
)

func orderAt(created time.Time, total float64, status models.OrderStatus) models.Order {
	return models.Order{
		TotalAmount: total,
		Status:      status,
		CreatedAt:   created,
	}
}

func orderWithItems(created time.Time, items ...models.CartItem) models.Order {
	return models.Order{Items: items, CreatedAt: created, Status: models.StatusCompleted}
}

func line(id, name string, price float64, qty int) models.CartItem {
	return models.CartItem{
		MenuItem: models.MenuItem{ID: id, Name: name, Price: price},
		Quantity: qty,
	}
}

func TestHourlyBuckets_EmptyOrders(t *testing.T) {
	buckets := HourlyBuckets(nil, time.Now())

	require.Len(t, buckets, 24)
	for i, b := range buckets {
		assert.Equal(t, i, b.Hour)
		assert.Zero(t, b.Orders)
		assert.Zero(t, b.Revenue)
	}
}

func TestHourlyBuckets_GroupsByHourOfDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC), 100, models.StatusCompleted),
		orderAt(time.Date(2026, 3, 10, 9, 45, 0, 0, time.UTC), 50, models.StatusPending),
		orderAt(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), 75, models.StatusReady),
		// different day, must not count
		orderAt(time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), 999, models.StatusCompleted),
	}

	buckets := HourlyBuckets(orders, day)

	require.Len(t, buckets, 24)
	assert.Equal(t, 2, buckets[9].Orders)
	assert.InDelta(t, 150, buckets[9].Revenue, 0.0001)
	assert.Equal(t, 1, buckets[18].Orders)
	assert.InDelta(t, 75, buckets[18].Revenue, 0.0001)
	assert.Zero(t, buckets[0].Orders)
}

func TestWeeklyBuckets(t *testing.T) {
	reference := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(reference.AddDate(0, 0, -6), 100, models.StatusCompleted),
		orderAt(reference, 200, models.StatusCompleted),
		// eight days back, outside the window
		orderAt(reference.AddDate(0, 0, -8), 500, models.StatusCompleted),
	}

	buckets := WeeklyBuckets(orders, reference)

	require.Len(t, buckets, 7)
	// oldest first
	assert.Equal(t, reference.AddDate(0, 0, -6).Day(), buckets[0].Date.Day())
	assert.InDelta(t, 100, buckets[0].Revenue, 0.0001)
	assert.Equal(t, 1, buckets[0].Orders)
	assert.InDelta(t, 200, buckets[6].Revenue, 0.0001)

	var total float64
	for _, b := range buckets {
		total += b.Revenue
	}
	assert.InDelta(t, 300, total, 0.0001)
}

func TestPopularItems_RanksByQuantity(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWithItems(now, line("a", "Item A", 10, 2), line("b", "Item B", 5, 1)),
		orderWithItems(now, line("a", "Item A", 10, 3)),
	}

	ranked := PopularItems(orders, 10)

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].MenuItemID)
	assert.Equal(t, "Item A", ranked[0].Name)
	assert.Equal(t, 5, ranked[0].Count)
	assert.InDelta(t, 50, ranked[0].Revenue, 0.0001)
	assert.Equal(t, "b", ranked[1].MenuItemID)
	assert.Equal(t, 1, ranked[1].Count)
}

func TestPopularItems_TruncatesAndTiesKeepFirstSeenOrder(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWithItems(now, line("x", "X", 1, 2), line("y", "Y", 1, 2), line("z", "Z", 1, 2)),
	}

	ranked := PopularItems(orders, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "x", ranked[0].MenuItemID)
	assert.Equal(t, "y", ranked[1].MenuItemID)
}

func TestPopularItems_NonPositiveLimit(t *testing.T) {
	orders := []models.Order{orderWithItems(time.Now(), line("a", "A", 1, 1))}

	assert.Empty(t, PopularItems(orders, 0))
	assert.Empty(t, PopularItems(orders, -1))
}

func TestPopularItems_Idempotent(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWithItems(now, line("a", "A", 10, 5)),
		orderWithItems(now, line("b", "B", 5, 1)),
	}

	first := PopularItems(orders, 10)
	second := PopularItems(orders, 10)

	assert.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(now.Add(-time.Hour), 100, models.StatusPending),
		orderAt(now.Add(-2*time.Hour), 50, models.StatusPreparing),
		orderAt(now.Add(-3*time.Hour), 80, models.StatusCompleted),
		orderAt(now.AddDate(0, 0, -1), 60, models.StatusCompleted),
		orderAt(now.Add(-time.Hour), 40, models.StatusCancelled),
	}

	s := Summarize(orders, now)

	assert.Equal(t, 4, s.TodayOrders)
	assert.InDelta(t, 270, s.TodayRevenue, 0.0001)
	assert.Equal(t, 2, s.ActiveOrders)
	assert.Equal(t, 2, s.CompletedOrders)
}
