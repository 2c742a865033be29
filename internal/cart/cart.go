// Package cart implements pure cart line-item reconciliation: merging
// additions into an existing cart, quantity updates and total computation.
// Functions operate on caller-owned slices and hold no state.
package cart

import "qr-ordering/internal/models"

// AddToCart merges a menu item with the given customization selections and
// note into the cart. An existing line matches when the menu item id, the
// customization selections and the note are all identical; a match gets its
// quantity incremented, otherwise a new line with quantity 1 is appended.
//
// Callers must verify menuItem.IsAvailable and that every required
// customization has at least one selected option before calling; AddToCart
// validates neither.
func AddToCart(items []models.CartItem, menuItem models.MenuItem, customizations map[string][]string, notes string) []models.CartItem {
	for i := range items {
		if items[i].MenuItem.ID == menuItem.ID &&
			SelectionsEqual(items[i].Customizations, customizations) &&
			items[i].Notes == notes {
			items[i].Quantity++
			return items
		}
	}
	return append(items, models.CartItem{
		MenuItem:       menuItem,
		Quantity:       1,
		Customizations: customizations,
		Notes:          notes,
	})
}

// SetQuantity sets the quantity of the line at index, removing the line when
// quantity is zero or negative. An out-of-range index is a caller bug and
// panics.
func SetQuantity(items []models.CartItem, index, quantity int) []models.CartItem {
	if quantity <= 0 {
		return append(items[:index], items[index+1:]...)
	}
	items[index].Quantity = quantity
	return items
}

// ComputeTotal returns the cart total: for each line, the snapshotted menu
// item price plus all selected option surcharges, times the quantity.
// Selected option ids that no longer resolve against the item's
// customizations contribute zero rather than failing the computation.
func ComputeTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += UnitPrice(item) * float64(item.Quantity)
	}
	return total
}

// UnitPrice returns the per-unit price of a cart line: base price plus the
// surcharges of every resolvable selected option.
func UnitPrice(item models.CartItem) float64 {
	price := item.MenuItem.Price
	for customizationID, optionIDs := range item.Customizations {
		c, ok := item.MenuItem.FindCustomization(customizationID)
		if !ok {
			continue
		}
		for _, optionID := range optionIDs {
			if opt, ok := c.FindOption(optionID); ok {
				price += opt.Price
			}
		}
	}
	return price
}

// SelectionsEqual reports whether two customization selections are
// structurally equal: the same customization ids, and per customization the
// same option ids in the same order. Map insertion order does not matter;
// option order does.
func SelectionsEqual(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for key, optsA := range a {
		optsB, ok := b[key]
		if !ok || len(optsA) != len(optsB) {
			return false
		}
		for i := range optsA {
			if optsA[i] != optsB[i] {
				return false
			}
		}
	}
	return true
}
