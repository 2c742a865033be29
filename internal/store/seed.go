package store

import "qr-ordering/internal/models"

// DemoRestaurantID is the restaurant id used by the demo fixture
const DemoRestaurantID = "550e8400-e29b-41d4-a716-446655440000"

// Seed loads the demo fixture: one restaurant, three categories, seven menu
// items and four tables. The bubble tea item carries two required
// single-select customizations.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurant := models.Restaurant{
		ID:            DemoRestaurantID,
		Name:          "Delicious Corner",
		Description:   "Authentic Taiwanese home cooking with fresh ingredients",
		Address:       "100 Fuxing South Road, Taipei",
		Phone:         "02-2345-6789",
		IsOpen:        true,
		BusinessHours: models.BusinessHours{Open: "11:00", Close: "21:00"},
	}
	s.restaurants[restaurant.ID] = restaurant

	categories := []models.Category{
		{ID: "1", Name: "Mains", Description: "Signature main dishes", SortOrder: 1, RestaurantID: restaurant.ID},
		{ID: "2", Name: "Soups", Description: "Comforting soups", SortOrder: 2, RestaurantID: restaurant.ID},
		{ID: "3", Name: "Drinks", Description: "Refreshing drinks", SortOrder: 3, RestaurantID: restaurant.ID},
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}

	items := []models.MenuItem{
		{ID: "1", Name: "Braised Pork Rice", Description: "Slow-braised pork over steamed rice", Price: 80, CategoryID: "1", RestaurantID: restaurant.ID, IsAvailable: true},
		{ID: "2", Name: "Beef Noodle Soup", Description: "Clear broth with tender beef chunks", Price: 150, CategoryID: "1", RestaurantID: restaurant.ID, IsAvailable: true},
		{ID: "3", Name: "Fried Rice", Description: "Egg fried rice with seasonal vegetables", Price: 90, CategoryID: "1", RestaurantID: restaurant.ID, IsAvailable: true},
		{ID: "4", Name: "Miso Soup", Description: "Classic Japanese miso soup", Price: 30, CategoryID: "2", RestaurantID: restaurant.ID, IsAvailable: true},
		{ID: "5", Name: "Corn Chowder", Description: "Creamy sweet corn soup", Price: 40, CategoryID: "2", RestaurantID: restaurant.ID, IsAvailable: true},
		{
			ID: "6", Name: "Bubble Milk Tea", Description: "Classic Taiwanese pearl milk tea", Price: 60,
			CategoryID: "3", RestaurantID: restaurant.ID, IsAvailable: true,
			Customizations: []models.Customization{
				{
					ID: "sweetness", Name: "Sweetness", Type: models.SingleSelect, Required: true,
					Options: []models.CustomizationOption{
						{ID: "normal", Name: "Normal"},
						{ID: "less", Name: "Less sugar"},
						{ID: "half", Name: "Half sugar"},
						{ID: "quarter", Name: "Quarter sugar"},
						{ID: "none", Name: "No sugar"},
					},
				},
				{
					ID: "ice", Name: "Ice", Type: models.SingleSelect, Required: true,
					Options: []models.CustomizationOption{
						{ID: "normal", Name: "Normal ice"},
						{ID: "less", Name: "Less ice"},
						{ID: "none", Name: "No ice"},
						{ID: "hot", Name: "Hot"},
					},
				},
			},
		},
		{ID: "7", Name: "Lemon Juice", Description: "Freshly squeezed lemon juice", Price: 50, CategoryID: "3", RestaurantID: restaurant.ID, IsAvailable: true},
	}
	for _, item := range items {
		s.menuItems[item.ID] = item
	}

	tables := []models.Table{
		{ID: "1", Number: "1", RestaurantID: restaurant.ID, QRCode: "table-1-qr", IsActive: true},
		{ID: "2", Number: "2", RestaurantID: restaurant.ID, QRCode: "table-2-qr", IsActive: true},
		{ID: "3", Number: "3", RestaurantID: restaurant.ID, QRCode: "table-3-qr", IsActive: true},
		{ID: "4", Number: "4", RestaurantID: restaurant.ID, QRCode: "table-4-qr", IsActive: true},
	}
	for _, t := range tables {
		s.tables[t.ID] = t
	}
}
