package menu

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"qr-ordering/internal/logger"
	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

// ValidationError marks a request the client must fix
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Service serves the restaurant profile, table lookups and the menu,
// and carries the menu management operations used by the dashboard
type Service struct {
	store  store.Store
	logger *logger.Logger
}

func NewService(st store.Store, log *logger.Logger) *Service {
	return &Service{store: st, logger: log}
}

// GetRestaurant returns the restaurant profile
func (s *Service) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.store.GetRestaurant(ctx, id)
}

// ListTables returns the restaurant's tables
func (s *Service) ListTables(ctx context.Context, restaurantID string) ([]models.Table, error) {
	return s.store.ListTables(ctx, restaurantID)
}

// ResolveTable resolves a scanned QR code to a table. Inactive tables are
// reported as not found so a stale code cannot open an ordering session.
func (s *Service) ResolveTable(ctx context.Context, qrCode string) (*models.Table, error) {
	table, err := s.store.GetTableByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	if !table.IsActive {
		return nil, store.ErrNotFound
	}
	return table, nil
}

// GetMenu returns the menu grouped by category, categories in sort order,
// each with its items. Unavailable items are included; the client renders
// them as sold out.
func (s *Service) GetMenu(ctx context.Context, restaurantID string) ([]models.MenuCategory, error) {
	categories, err := s.store.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	items, err := s.store.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	byCategory := make(map[string][]models.MenuItem)
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	menu := make([]models.MenuCategory, 0, len(categories))
	for _, c := range categories {
		group := models.MenuCategory{Category: c, Items: byCategory[c.ID]}
		if group.Items == nil {
			group.Items = []models.MenuItem{}
		}
		menu = append(menu, group)
	}
	return menu, nil
}

// GetMenuItem returns a single menu item
func (s *Service) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.store.GetMenuItem(ctx, id)
}

// CreateMenuItem creates a new menu item
func (s *Service) CreateMenuItem(ctx context.Context, req *models.CreateMenuItemRequest, requestID string) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := &models.MenuItem{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		CategoryID:     req.CategoryID,
		RestaurantID:   req.RestaurantID,
		IsAvailable:    available,
		Customizations: req.Customizations,
	}

	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info("menu_item_created", "Menu item created", requestID, map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
	})

	return item, nil
}

// UpdateMenuItem applies a partial update to a menu item
func (s *Service) UpdateMenuItem(ctx context.Context, id string, req *models.UpdateMenuItemRequest, requestID string) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	item, err := s.store.UpdateMenuItem(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("menu_item_updated", "Menu item updated", requestID, map[string]interface{}{
		"item_id": item.ID,
	})

	return item, nil
}

// DeleteMenuItem removes a menu item
func (s *Service) DeleteMenuItem(ctx context.Context, id string, requestID string) error {
	if err := s.store.DeleteMenuItem(ctx, id); err != nil {
		return err
	}

	s.logger.Info("menu_item_deleted", "Menu item deleted", requestID, map[string]interface{}{
		"item_id": id,
	})

	return nil
}
