// Package analytics implements pure aggregations over order collections for
// the staff dashboard: hourly and weekly revenue buckets, popular-item
// rankings and summary counters. All functions are side-effect free and
// total on any input, including empty order lists.
package analytics

import (
	"sort"
	"time"

	"qr-ordering/internal/models"
)

// HourlyBucket accumulates orders and revenue for one hour of a day
type HourlyBucket struct {
	Hour    int     `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DailyBucket accumulates orders and revenue for one calendar day.
// Weekday labelling is a presentation concern left to the caller.
type DailyBucket struct {
	Date    time.Time `json:"date"`
	Orders  int       `json:"orders"`
	Revenue float64   `json:"revenue"`
}

// PopularItem is one entry of the popular-item ranking
type PopularItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
}

// Summary holds the dashboard headline counters
type Summary struct {
	TodayOrders     int     `json:"today_orders"`
	TodayRevenue    float64 `json:"today_revenue"`
	ActiveOrders    int     `json:"active_orders"`
	CompletedOrders int     `json:"completed_orders"`
}

// HourlyBuckets distributes the orders created on the given calendar day into
// 24 zero-filled per-hour buckets. Dates are compared in day's location.
func HourlyBuckets(orders []models.Order, day time.Time) []HourlyBucket {
	buckets := make([]HourlyBucket, 24)
	for i := range buckets {
		buckets[i].Hour = i
	}

	for _, order := range orders {
		created := order.CreatedAt.In(day.Location())
		if !sameDate(created, day) {
			continue
		}
		h := created.Hour()
		buckets[h].Orders++
		buckets[h].Revenue += order.TotalAmount
	}
	return buckets
}

// WeeklyBuckets distributes orders into 7 daily buckets for the trailing week
// ending at reference inclusive, oldest first. Orders match a bucket by exact
// calendar date, not elapsed time.
func WeeklyBuckets(orders []models.Order, reference time.Time) []DailyBucket {
	buckets := make([]DailyBucket, 7)
	for i := range buckets {
		buckets[i].Date = reference.AddDate(0, 0, i-6)
	}

	for _, order := range orders {
		created := order.CreatedAt.In(reference.Location())
		for i := range buckets {
			if sameDate(created, buckets[i].Date) {
				buckets[i].Orders++
				buckets[i].Revenue += order.TotalAmount
				break
			}
		}
	}
	return buckets
}

// PopularItems ranks menu items by quantity sold across all orders, most sold
// first, truncated to topN. The item name is taken from its first occurrence;
// revenue counts the snapshotted base price times quantity. Ties keep
// first-seen order (stable sort). A non-positive topN yields an empty result.
func PopularItems(orders []models.Order, topN int) []PopularItem {
	if topN <= 0 {
		return []PopularItem{}
	}

	index := make(map[string]int)
	ranked := []PopularItem{}

	for _, order := range orders {
		for _, item := range order.Items {
			id := item.MenuItem.ID
			pos, seen := index[id]
			if !seen {
				pos = len(ranked)
				index[id] = pos
				ranked = append(ranked, PopularItem{MenuItemID: id, Name: item.MenuItem.Name})
			}
			ranked[pos].Count += item.Quantity
			ranked[pos].Revenue += item.MenuItem.Price * float64(item.Quantity)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Summarize computes the dashboard headline counters: today's order count and
// revenue, orders still needing attention and completed orders.
func Summarize(orders []models.Order, now time.Time) Summary {
	var s Summary
	for _, order := range orders {
		created := order.CreatedAt.In(now.Location())
		if sameDate(created, now) {
			s.TodayOrders++
			s.TodayRevenue += order.TotalAmount
		}
		if order.Status.IsActive() {
			s.ActiveOrders++
		}
		if order.Status == models.StatusCompleted {
			s.CompletedOrders++
		}
	}
	return s
}

// sameDate reports whether two times fall on the same calendar date
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
