package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"qr-ordering/internal/cart"
	"qr-ordering/internal/logger"
	"qr-ordering/internal/messaging"
	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

// totalTolerance absorbs float rounding between client and server totals
const totalTolerance = 0.005

// ValidationError marks a request the client must fix
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Service implements order submission, lookup and status updates
type Service struct {
	store     store.Store
	publisher *messaging.Publisher
	logger    *logger.Logger
	semaphore chan struct{}
}

// NewService creates a new order service. maxConcurrent bounds concurrent
// order submissions.
func NewService(st store.Store, publisher *messaging.Publisher, log *logger.Logger, maxConcurrent int) *Service {
	return &Service{
		store:     st,
		publisher: publisher,
		logger:    log,
		semaphore: make(chan struct{}, maxConcurrent),
	}
}

// CreateOrder validates a submitted cart against the live menu, recomputes
// its total and persists it as a pending order. The validation enforces the
// caller contract of the cart package: items must be available and every
// required customization must have a selection.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.Order, error) {
	select {
	case s.semaphore <- struct{}{}:
		defer func() { <-s.semaphore }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	for i := range req.Items {
		live, err := s.validateLineItem(ctx, i, req.Items[i])
		if err != nil {
			return nil, err
		}
		// price from the live menu, not the client snapshot
		req.Items[i].MenuItem = *live
	}

	total := cart.ComputeTotal(req.Items)
	if req.TotalAmount != 0 && math.Abs(req.TotalAmount-total) > totalTolerance {
		return nil, &ValidationError{
			Message: fmt.Sprintf("total_amount mismatch: got %.2f, computed %.2f", req.TotalAmount, total),
		}
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:            uuid.NewString(),
		RestaurantID:  req.RestaurantID,
		TableNumber:   req.TableNumber,
		Items:         req.Items,
		TotalAmount:   total,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		CustomerNotes: req.CustomerNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":     order.ID,
		"table_number": order.TableNumber,
		"total_amount": order.TotalAmount,
	})

	s.publishOrderCreated(ctx, order, requestID)

	return order, nil
}

// GetOrder returns a single order
func (s *Service) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// ListOrders returns orders for a restaurant, newest first, optionally
// filtered by status
func (s *Service) ListOrders(ctx context.Context, restaurantID string, status models.OrderStatus) ([]models.Order, error) {
	if status != "" && !status.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown status filter: %s", status)}
	}
	return s.store.ListOrders(ctx, store.OrderFilter{RestaurantID: restaurantID, Status: status})
}

// GetOrderHistory returns the status log of an order, oldest first
func (s *Service) GetOrderHistory(ctx context.Context, id string) ([]models.OrderStatusHistory, error) {
	return s.store.GetOrderHistory(ctx, id)
}

// UpdateOrder applies a staff status/payment update, rejecting status
// transitions the state machine does not allow
func (s *Service) UpdateOrder(ctx context.Context, id string, req *models.UpdateOrderRequest, requestID string) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	current, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != current.Status {
		if !current.Status.CanTransitionTo(*req.Status) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("invalid status transition: %s -> %s", current.Status, *req.Status),
			}
		}
	}

	updated, err := s.store.UpdateOrder(ctx, id, req.Status, req.PaymentStatus, "dashboard")
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info("order_updated", "Order updated", requestID, map[string]interface{}{
		"order_id":       updated.ID,
		"status":         updated.Status,
		"payment_status": updated.PaymentStatus,
	})

	if req.Status != nil && *req.Status != current.Status {
		s.publishStatusUpdate(ctx, updated, current.Status, requestID)
	}

	return updated, nil
}

// HealthCheck reports whether the storage backend is reachable
func (s *Service) HealthCheck(ctx context.Context) bool {
	_, err := s.store.ListOrders(ctx, store.OrderFilter{})
	return err == nil
}

// validateLineItem checks one cart line against the live menu and returns
// the current menu item on success
func (s *Service) validateLineItem(ctx context.Context, index int, item models.CartItem) (*models.MenuItem, error) {
	menuItem, err := s.store.GetMenuItem(ctx, item.MenuItem.ID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, &ValidationError{Message: fmt.Sprintf("items[%d]: menu item %s not found", index, item.MenuItem.ID)}
		}
		return nil, fmt.Errorf("failed to look up menu item: %w", err)
	}
	if !menuItem.IsAvailable {
		return nil, &ValidationError{Message: fmt.Sprintf("items[%d]: %s is not available", index, menuItem.Name)}
	}

	for _, c := range menuItem.Customizations {
		selected := item.Customizations[c.ID]
		if c.Required && len(selected) == 0 {
			return nil, &ValidationError{
				Message: fmt.Sprintf("items[%d]: customization %s is required", index, c.Name),
			}
		}
		if c.Type == models.SingleSelect && len(selected) > 1 {
			return nil, &ValidationError{
				Message: fmt.Sprintf("items[%d]: customization %s allows only one option", index, c.Name),
			}
		}
	}
	return menuItem, nil
}

// publishOrderCreated emits the order-created event; failures are logged but
// do not fail the already persisted order
func (s *Service) publishOrderCreated(ctx context.Context, order *models.Order, requestID string) {
	if s.publisher == nil {
		return
	}
	msg := models.NewOrderCreatedMessage(order)
	routingKey := models.GenerateRoutingKey(order.TableNumber)
	if err := s.publisher.PublishOrderCreated(ctx, msg, routingKey); err != nil {
		s.logger.Error("order_publish_failed", "Failed to publish order-created event", requestID, err, map[string]interface{}{
			"order_id": order.ID,
		})
	}
}

// publishStatusUpdate emits a status-change notification
func (s *Service) publishStatusUpdate(ctx context.Context, order *models.Order, oldStatus models.OrderStatus, requestID string) {
	if s.publisher == nil {
		return
	}
	msg := models.NewStatusUpdateMessage(order, oldStatus, "dashboard")
	if err := s.publisher.PublishNotification(ctx, msg); err != nil {
		s.logger.Error("notification_publish_failed", "Failed to publish status notification", requestID, err, map[string]interface{}{
			"order_id": order.ID,
		})
	}
}
