package models

import "fmt"

// CustomizationType controls how many options of a customization may be selected
type CustomizationType string

const (
	SingleSelect   CustomizationType = "single"
	MultipleSelect CustomizationType = "multiple"
)

// Restaurant represents a restaurant profile
type Restaurant struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Address       string        `json:"address,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	IsOpen        bool          `json:"is_open"`
	BusinessHours BusinessHours `json:"business_hours"`
}

// BusinessHours represents opening hours as HH:MM strings
type BusinessHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Category represents a menu category
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	SortOrder    int    `json:"sort_order"`
	RestaurantID string `json:"restaurant_id"`
}

// MenuItem represents an orderable menu item
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          float64         `json:"price"`
	Image          string          `json:"image,omitempty"`
	CategoryID     string          `json:"category_id"`
	RestaurantID   string          `json:"restaurant_id"`
	IsAvailable    bool            `json:"is_available"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// Customization represents a choice group attached to a menu item
type Customization struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Type     CustomizationType     `json:"type"`
	Required bool                  `json:"required"`
	Options  []CustomizationOption `json:"options"`
}

// CustomizationOption represents a selectable option within a customization
type CustomizationOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Table represents a restaurant table reachable through a QR code
type Table struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	RestaurantID string `json:"restaurant_id"`
	QRCode       string `json:"qr_code"`
	IsActive     bool   `json:"is_active"`
}

// MenuCategory represents a category with its items, as served by GET /api/menu
type MenuCategory struct {
	Category
	Items []MenuItem `json:"items"`
}

// FindCustomization returns the customization with the given id, if present
func (m *MenuItem) FindCustomization(id string) (Customization, bool) {
	for _, c := range m.Customizations {
		if c.ID == id {
			return c, true
		}
	}
	return Customization{}, false
}

// FindOption returns the option with the given id, if present
func (c *Customization) FindOption(id string) (CustomizationOption, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return CustomizationOption{}, false
}

// CreateMenuItemRequest represents the request to create a menu item
type CreateMenuItemRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          float64         `json:"price"`
	CategoryID     string          `json:"category_id"`
	RestaurantID   string          `json:"restaurant_id"`
	IsAvailable    *bool           `json:"is_available,omitempty"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// Validate validates the create menu item request
func (req *CreateMenuItemRequest) Validate() error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}
	if req.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if req.CategoryID == "" {
		return fmt.Errorf("category_id is required")
	}
	if req.RestaurantID == "" {
		return fmt.Errorf("restaurant_id is required")
	}
	for i, c := range req.Customizations {
		if err := validateCustomization(c, i); err != nil {
			return err
		}
	}
	return nil
}

// UpdateMenuItemRequest represents a partial menu item update
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// Validate validates the update menu item request
func (req *UpdateMenuItemRequest) Validate() error {
	if req.Name == nil && req.Description == nil && req.Price == nil && req.IsAvailable == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if req.Price != nil && *req.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	return nil
}

// validateCustomization validates a single customization definition
func validateCustomization(c Customization, index int) error {
	prefix := fmt.Sprintf("customizations[%d]", index)

	if c.ID == "" {
		return fmt.Errorf("%s.id is required", prefix)
	}
	if c.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if c.Type != SingleSelect && c.Type != MultipleSelect {
		return fmt.Errorf("%s.type must be one of: single, multiple", prefix)
	}
	if len(c.Options) == 0 {
		return fmt.Errorf("%s.options cannot be empty", prefix)
	}
	for j, opt := range c.Options {
		if opt.ID == "" {
			return fmt.Errorf("%s.options[%d].id is required", prefix, j)
		}
		if opt.Price < 0 {
			return fmt.Errorf("%s.options[%d].price must not be negative", prefix, j)
		}
	}
	return nil
}
