package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-ordering/internal/logger"
	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

func newTestService() (*Service, *store.MemoryStore) {
	st := store.NewMemoryStore()
	st.Seed()
	return NewService(st, nil, logger.New("order-test"), 10), st
}

func validRequest() *models.CreateOrderRequest {
	return &models.CreateOrderRequest{
		RestaurantID: store.DemoRestaurantID,
		TableNumber:  "3",
		Items: []models.CartItem{
			{MenuItem: models.MenuItem{ID: "1"}, Quantity: 2},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validRequest(), "req-1")
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	// braised pork rice is 80 in the fixture; the client snapshot price is
	// ignored in favor of the live menu
	assert.InDelta(t, 160, order.TotalAmount, 0.0001)

	stored, err := st.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}

func TestCreateOrder_CustomizationSurcharges(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Items = []models.CartItem{
		{
			MenuItem: models.MenuItem{ID: "6"},
			Quantity: 1,
			Customizations: map[string][]string{
				"sweetness": {"half"},
				"ice":       {"less"},
			},
		},
	}

	order, err := svc.CreateOrder(context.Background(), req, "req-1")
	require.NoError(t, err)
	// bubble tea is 60; the fixture's sweetness and ice options carry no
	// surcharge
	assert.InDelta(t, 60, order.TotalAmount, 0.0001)
}

func TestCreateOrder_UnknownItem(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Items[0].MenuItem.ID = "no-such-item"

	_, err := svc.CreateOrder(context.Background(), req, "req-1")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "not found")
}

func TestCreateOrder_UnavailableItem(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()

	unavailable := false
	_, err := st.UpdateMenuItem(ctx, "1", &models.UpdateMenuItemRequest{IsAvailable: &unavailable})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, validRequest(), "req-1")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "not available")
}

func TestCreateOrder_MissingRequiredCustomization(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Items = []models.CartItem{
		{MenuItem: models.MenuItem{ID: "6"}, Quantity: 1},
	}

	_, err := svc.CreateOrder(context.Background(), req, "req-1")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "required")
}

func TestCreateOrder_SingleSelectCardinality(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Items = []models.CartItem{
		{
			MenuItem: models.MenuItem{ID: "6"},
			Quantity: 1,
			Customizations: map[string][]string{
				"sweetness": {"half", "none"},
				"ice":       {"less"},
			},
		},
	}

	_, err := svc.CreateOrder(context.Background(), req, "req-1")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "only one option")
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.TotalAmount = 999

	_, err := svc.CreateOrder(context.Background(), req, "req-1")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "total_amount mismatch")
}

func TestCreateOrder_MatchingClientTotalAccepted(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.TotalAmount = 160

	order, err := svc.CreateOrder(context.Background(), req, "req-1")
	require.NoError(t, err)
	assert.InDelta(t, 160, order.TotalAmount, 0.0001)
}

func TestUpdateOrder_Transitions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validRequest(), "req-1")
	require.NoError(t, err)

	confirmed := models.StatusConfirmed
	updated, err := svc.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{Status: &confirmed}, "req-2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	ready := models.StatusReady
	_, err = svc.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{Status: &ready}, "req-3")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "invalid status transition")
}

func TestUpdateOrder_PaymentOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validRequest(), "req-1")
	require.NoError(t, err)

	paid := models.PaymentPaid
	updated, err := svc.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{PaymentStatus: &paid}, "req-2")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc, _ := newTestService()

	confirmed := models.StatusConfirmed
	_, err := svc.UpdateOrder(context.Background(), "missing", &models.UpdateOrderRequest{Status: &confirmed}, "req-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListOrders_RejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ListOrders(context.Background(), store.DemoRestaurantID, models.OrderStatus("cooking"))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetOrderHistory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validRequest(), "req-1")
	require.NoError(t, err)

	confirmed := models.StatusConfirmed
	_, err = svc.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{Status: &confirmed}, "req-2")
	require.NoError(t, err)

	history, err := svc.GetOrderHistory(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusPending, history[0].Status)
	assert.Equal(t, models.StatusConfirmed, history[1].Status)
}
