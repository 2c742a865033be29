// Package notification runs the console subscriber that listens for new
// orders and status changes and prints human-readable notifications.
package notification

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"qr-ordering/internal/logger"
	"qr-ordering/internal/messaging"
	"qr-ordering/internal/models"
)

// Subscriber consumes the order and notification queues
type Subscriber struct {
	orders        *messaging.Consumer
	notifications *messaging.Consumer
	logger        *logger.Logger
}

// NewSubscriber creates a subscriber over the two consumers
func NewSubscriber(orders, notifications *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		orders:        orders,
		notifications: notifications,
		logger:        log,
	}
}

// Start consumes both queues until the context is cancelled
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.orders.StartConsuming(ctx, s.handleOrderCreated) })
	g.Go(func() error { return s.notifications.StartConsuming(ctx, s.handleStatusUpdate) })

	err := g.Wait()
	if err == context.Canceled {
		s.logger.Info("graceful_shutdown", "Notification subscriber stopped", requestID, nil)
		return nil
	}
	return err
}

// handleOrderCreated processes new-order events
func (s *Subscriber) handleOrderCreated(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var msg models.OrderCreatedMessage
	if err := messaging.ParseMessage(body, &msg); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse order-created message", requestID, err, nil)
		return fmt.Errorf("failed to parse order-created message: %w", err)
	}

	itemCount := 0
	for _, item := range msg.Items {
		itemCount += item.Quantity
	}

	fmt.Printf("🔔 [%s] New order at table %s: %d item(s), total %.2f\n",
		msg.CreatedAt.Format("2006-01-02 15:04:05"),
		msg.TableNumber,
		itemCount,
		msg.TotalAmount,
	)

	s.logger.Info("order_notification_displayed", "New-order notification displayed", requestID, map[string]interface{}{
		"order_id":     msg.OrderID,
		"table_number": msg.TableNumber,
		"total_amount": msg.TotalAmount,
	})

	return nil
}

// handleStatusUpdate processes status-change notifications
func (s *Subscriber) handleStatusUpdate(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var msg models.StatusUpdateMessage
	if err := messaging.ParseMessage(body, &msg); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse status-update message", requestID, err, nil)
		return fmt.Errorf("failed to parse status-update message: %w", err)
	}

	fmt.Println(formatStatusUpdate(&msg))

	s.logger.Info("notification_displayed", "Status notification displayed", requestID, map[string]interface{}{
		"order_id":   msg.OrderID,
		"old_status": msg.OldStatus,
		"new_status": msg.NewStatus,
		"changed_by": msg.ChangedBy,
	})

	return nil
}

// formatStatusUpdate renders a status change as a console line
func formatStatusUpdate(msg *models.StatusUpdateMessage) string {
	timestamp := msg.Timestamp.Format("2006-01-02 15:04:05")

	switch models.OrderStatus(msg.NewStatus) {
	case models.StatusConfirmed:
		return fmt.Sprintf("👍 [%s] Order for table %s has been confirmed.", timestamp, msg.TableNumber)
	case models.StatusPreparing:
		return fmt.Sprintf("🍳 [%s] Order for table %s is being prepared.", timestamp, msg.TableNumber)
	case models.StatusReady:
		return fmt.Sprintf("✅ [%s] Order for table %s is ready to serve!", timestamp, msg.TableNumber)
	case models.StatusCompleted:
		return fmt.Sprintf("🎉 [%s] Order for table %s has been completed.", timestamp, msg.TableNumber)
	case models.StatusCancelled:
		return fmt.Sprintf("❌ [%s] Order for table %s has been cancelled.", timestamp, msg.TableNumber)
	default:
		return fmt.Sprintf("📋 [%s] Order for table %s changed from '%s' to '%s' by %s.",
			timestamp, msg.TableNumber, msg.OldStatus, msg.NewStatus, msg.ChangedBy)
	}
}
