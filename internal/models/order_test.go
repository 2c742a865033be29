package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPreparing, false},
		{StatusPending, StatusReady, false},
		{StatusConfirmed, StatusPreparing, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusReady, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, false},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, OrderStatus("cooking").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusPreparing.IsActive())
	assert.False(t, StatusReady.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestCreateOrderRequestValidate(t *testing.T) {
	valid := func() CreateOrderRequest {
		return CreateOrderRequest{
			RestaurantID: "r1",
			TableNumber:  "5",
			Items: []CartItem{
				{MenuItem: MenuItem{ID: "m1", Price: 10}, Quantity: 1},
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing restaurant", func(t *testing.T) {
		req := valid()
		req.RestaurantID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("missing table", func(t *testing.T) {
		req := valid()
		req.TableNumber = ""
		assert.Error(t, req.Validate())
	})

	t.Run("no items", func(t *testing.T) {
		req := valid()
		req.Items = nil
		assert.Error(t, req.Validate())
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := valid()
		req.Items[0].Quantity = 0
		assert.Error(t, req.Validate())
	})

	t.Run("too many items", func(t *testing.T) {
		req := valid()
		for i := 0; i < 51; i++ {
			req.Items = append(req.Items, CartItem{MenuItem: MenuItem{ID: "m"}, Quantity: 1})
		}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateOrderRequestValidate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		req := UpdateOrderRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("valid status", func(t *testing.T) {
		s := StatusConfirmed
		req := UpdateOrderRequest{Status: &s}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		s := OrderStatus("cooking")
		req := UpdateOrderRequest{Status: &s}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown payment status", func(t *testing.T) {
		p := PaymentStatus("refunded")
		req := UpdateOrderRequest{PaymentStatus: &p}
		assert.Error(t, req.Validate())
	})
}

func TestGenerateRoutingKey(t *testing.T) {
	assert.Equal(t, "orders.created.7", GenerateRoutingKey("7"))
}
