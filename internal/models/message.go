package models

import (
	"fmt"
	"time"
)

// OrderCreatedMessage represents a message published when a new order is submitted
type OrderCreatedMessage struct {
	OrderID     string     `json:"order_id"`
	TableNumber string     `json:"table_number"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
}

// StatusUpdateMessage represents a status change notification
type StatusUpdateMessage struct {
	OrderID     string    `json:"order_id"`
	TableNumber string    `json:"table_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ChangedBy   string    `json:"changed_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderCreatedMessage builds the event published for a freshly created order
func NewOrderCreatedMessage(order *Order) *OrderCreatedMessage {
	return &OrderCreatedMessage{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
}

// NewStatusUpdateMessage builds the notification for an order status change
func NewStatusUpdateMessage(order *Order, oldStatus OrderStatus, changedBy string) *StatusUpdateMessage {
	return &StatusUpdateMessage{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		OldStatus:   string(oldStatus),
		NewStatus:   string(order.Status),
		ChangedBy:   changedBy,
		Timestamp:   time.Now().UTC(),
	}
}

// GenerateRoutingKey generates the routing key for order-created messages
func GenerateRoutingKey(tableNumber string) string {
	return fmt.Sprintf("orders.created.%s", tableNumber)
}
