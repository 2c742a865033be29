package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// statusTransitions defines the allowed order status transitions.
// completed and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusCompleted},
}

// IsValid reports whether the status is one of the known order statuses
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the order still needs staff attention
func (s OrderStatus) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing:
		return true
	}
	return false
}

// IsValid reports whether the payment status is one of the known values
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// CartItem represents one line in a cart or order: a menu item snapshot with
// a quantity, customization selections and an optional note. The menu item is
// frozen at add-time and never re-fetched.
type CartItem struct {
	MenuItem       MenuItem            `json:"menu_item"`
	Quantity       int                 `json:"quantity"`
	Customizations map[string][]string `json:"customizations"`
	Notes          string              `json:"notes,omitempty"`
}

// Order represents a submitted customer order
type Order struct {
	ID            string        `json:"id"`
	RestaurantID  string        `json:"restaurant_id"`
	TableNumber   string        `json:"table_number"`
	Items         []CartItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	CustomerNotes string        `json:"customer_notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CreateOrderRequest represents the request to submit a cart as an order
type CreateOrderRequest struct {
	RestaurantID  string     `json:"restaurant_id"`
	TableNumber   string     `json:"table_number"`
	Items         []CartItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	CustomerNotes string     `json:"customer_notes,omitempty"`
}

// Validate checks the structural shape of the request. Availability and
// required-customization checks need the current menu and live in the
// order service.
func (req *CreateOrderRequest) Validate() error {
	if req.RestaurantID == "" {
		return fmt.Errorf("restaurant_id is required")
	}
	if req.TableNumber == "" {
		return fmt.Errorf("table_number is required")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("items cannot be empty")
	}
	if len(req.Items) > 50 {
		return fmt.Errorf("items cannot contain more than 50 entries")
	}
	for i, item := range req.Items {
		if item.MenuItem.ID == "" {
			return fmt.Errorf("items[%d].menu_item.id is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d].quantity must be greater than 0", i)
		}
	}
	return nil
}

// UpdateOrderRequest represents a staff status/payment update
type UpdateOrderRequest struct {
	Status        *OrderStatus   `json:"status,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
}

// Validate validates field membership; transition checks happen in the service
// against the order's current status.
func (req *UpdateOrderRequest) Validate() error {
	if req.Status == nil && req.PaymentStatus == nil {
		return fmt.Errorf("status or payment_status is required")
	}
	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("status must be one of: pending, confirmed, preparing, ready, completed, cancelled")
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.IsValid() {
		return fmt.Errorf("payment_status must be one of: pending, paid, failed")
	}
	return nil
}

// OrderStatusHistory represents an entry in the order status log
type OrderStatusHistory struct {
	Status    OrderStatus `json:"status"`
	ChangedBy string      `json:"changed_by"`
	ChangedAt time.Time   `json:"timestamp"`
	Notes     string      `json:"notes,omitempty"`
}
