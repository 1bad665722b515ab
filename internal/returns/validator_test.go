package returns_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
	mock_returns "gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns/mocks"
)

var now = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

func newValidator(t *testing.T, opts returns.Options) (*returns.Validator, *mock_returns.MockStore, *mock_returns.MockOrderGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_returns.NewMockStore(ctrl)
	orders := mock_returns.NewMockOrderGateway(ctrl)
	v := returns.NewValidator(store, orders, opts, zap.NewNop())
	v.SetClock(func() time.Time { return now })
	return v, store, orders
}

func completedOrder(ageDays int) *returns.Order {
	return &returns.Order{ID: 100, ContactID: 7, StatusID: 8, CreatedAt: now.AddDate(0, 0, -ageDays)}
}

func TestValidateOrderForReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("nil order", func(t *testing.T) {
		v, _, _ := newValidator(t, returns.DefaultOptions())
		res, err := v.ValidateOrderForReturn(ctx, nil)
		require.NoError(t, err)
		assert.False(t, res.Eligible)
		assert.Equal(t, "Order not found", res.Message)
	})

	t.Run("not completed", func(t *testing.T) {
		v, _, _ := newValidator(t, returns.DefaultOptions())
		order := completedOrder(1)
		order.StatusID = 3
		res, err := v.ValidateOrderForReturn(ctx, order)
		require.NoError(t, err)
		assert.False(t, res.Eligible)
		assert.Equal(t, "Order must be completed before return", res.Message)
	})

	t.Run("fractional completed status", func(t *testing.T) {
		v, store, _ := newValidator(t, returns.DefaultOptions())
		order := completedOrder(1)
		order.StatusID = 7.4
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, nil)
		res, err := v.ValidateOrderForReturn(ctx, order)
		require.NoError(t, err)
		assert.True(t, res.Eligible)
	})

	t.Run("window expired", func(t *testing.T) {
		v, _, _ := newValidator(t, returns.DefaultOptions())
		res, err := v.ValidateOrderForReturn(ctx, completedOrder(20))
		require.NoError(t, err)
		assert.False(t, res.Eligible)
		assert.Contains(t, res.Message, "14 days")
	})

	t.Run("last day of window", func(t *testing.T) {
		v, store, _ := newValidator(t, returns.DefaultOptions())
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, nil)
		res, err := v.ValidateOrderForReturn(ctx, completedOrder(14))
		require.NoError(t, err)
		assert.True(t, res.Eligible)
		assert.Equal(t, 0, res.DaysLeft)
	})

	t.Run("active return exists", func(t *testing.T) {
		v, store, _ := newValidator(t, returns.DefaultOptions())
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).
			Return(&returns.Return{ID: 1, Status: returns.StatusApproved}, nil)
		res, err := v.ValidateOrderForReturn(ctx, completedOrder(2))
		require.NoError(t, err)
		assert.False(t, res.Eligible)
		assert.Equal(t, "A return request already exists for this order", res.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		v, store, _ := newValidator(t, returns.DefaultOptions())
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, errors.New("db down"))
		_, err := v.ValidateOrderForReturn(ctx, completedOrder(2))
		require.Error(t, err)
		assert.Equal(t, returns.KindCollaboratorFailure, returns.KindOf(err))
	})

	t.Run("eligible with deadline", func(t *testing.T) {
		v, store, _ := newValidator(t, returns.DefaultOptions())
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, nil)
		res, err := v.ValidateOrderForReturn(ctx, completedOrder(4))
		require.NoError(t, err)
		assert.True(t, res.Eligible)
		assert.Equal(t, "2025-06-30", res.Deadline)
		assert.Equal(t, 10, res.DaysLeft)
	})
}

func validRequest() returns.ReturnRequest {
	return returns.ReturnRequest{
		OrderID:       100,
		ContactID:     7,
		CustomerEmail: "ann@example.com",
		CustomerName:  "Ann",
		ReturnReason:  "Damaged item",
		Items: []returns.RequestItem{
			{Selected: true, OrderItemID: 1, ItemName: "Mug", Quantity: 1, Price: decimal.NewFromInt(10), Reason: "Broken"},
			{Selected: false, OrderItemID: 2, ItemName: "Plate"},
		},
	}
}

func TestValidateReturnRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		v, store, orders := newValidator(t, returns.DefaultOptions())
		orders.EXPECT().FindOrderByID(ctx, int64(100)).Return(completedOrder(3), nil)
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, nil)

		res, err := v.ValidateReturnRequest(ctx, validRequest())
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, "Validation passed", res.Message)
	})

	t.Run("collects every field error", func(t *testing.T) {
		v, _, _ := newValidator(t, returns.DefaultOptions())
		res, err := v.ValidateReturnRequest(ctx, returns.ReturnRequest{CustomerEmail: "not-an-email"})
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, map[string]string{
			"order_id":       "Order ID is required",
			"customer_email": "Invalid email format",
			"customer_name":  "Name is required",
			"return_reason":  "Return reason is required",
			"items":          "At least one item must be selected",
		}, res.Errors)
	})

	t.Run("no items selected", func(t *testing.T) {
		v, store, orders := newValidator(t, returns.DefaultOptions())
		orders.EXPECT().FindOrderByID(ctx, int64(100)).Return(completedOrder(3), nil)
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, nil)

		req := validRequest()
		req.Items[0].Selected = false
		res, err := v.ValidateReturnRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "No items selected for return", res.Errors["items"])
	})

	t.Run("per item errors keyed by index", func(t *testing.T) {
		opts := returns.DefaultOptions()
		opts.RequirePhotos = true
		v, store, orders := newValidator(t, opts)
		orders.EXPECT().FindOrderByID(ctx, int64(100)).Return(completedOrder(3), nil)
		store.EXPECT().FindActiveByOrder(ctx, int64(100)).Return(nil, nil)

		req := validRequest()
		req.Items = append(req.Items, returns.RequestItem{Selected: true, Quantity: 0, Reason: " "})
		res, err := v.ValidateReturnRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Invalid quantity", res.Errors["items.2.quantity"])
		assert.Contains(t, res.Errors, "items.2.reason")
		assert.Contains(t, res.Errors, "items.0.images")
		assert.Contains(t, res.Errors, "items.2.images")
		assert.NotContains(t, res.Errors, "items.1.images")
	})

	t.Run("order not found", func(t *testing.T) {
		v, _, orders := newValidator(t, returns.DefaultOptions())
		orders.EXPECT().FindOrderByID(ctx, int64(100)).Return(nil, returns.ErrNotFound)

		res, err := v.ValidateReturnRequest(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"order": "Order not found"}, res.Errors)
	})

	t.Run("order ineligible surfaces as order error", func(t *testing.T) {
		v, _, orders := newValidator(t, returns.DefaultOptions())
		orders.EXPECT().FindOrderByID(ctx, int64(100)).Return(completedOrder(30), nil)

		res, err := v.ValidateReturnRequest(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Return period has expired (max 14 days)", res.Errors["order"])
	})

	t.Run("gateway failure", func(t *testing.T) {
		v, _, orders := newValidator(t, returns.DefaultOptions())
		orders.EXPECT().FindOrderByID(ctx, int64(100)).Return(nil, errors.New("timeout"))

		_, err := v.ValidateReturnRequest(ctx, validRequest())
		require.Error(t, err)
		assert.Equal(t, returns.KindCollaboratorFailure, returns.KindOf(err))
	})
}

func TestCanReturnItem(t *testing.T) {
	v, _, _ := newValidator(t, returns.DefaultOptions())
	assert.True(t, v.CanReturnItem(returns.OrderItem{TypeID: returns.ItemTypeVariation}))
	assert.False(t, v.CanReturnItem(returns.OrderItem{TypeID: 6}))
}

func TestValidateImage(t *testing.T) {
	v, _, _ := newValidator(t, returns.DefaultOptions())

	assert.Empty(t, v.ValidateImage(1024, "image/png"))
	assert.Empty(t, v.ValidateImage(5<<20, "image/WEBP"))
	assert.Equal(t, []string{"File size exceeds maximum allowed (5MB)"}, v.ValidateImage(5<<20+1, "image/jpeg"))
	assert.Equal(t, []string{
		"File size exceeds maximum allowed (5MB)",
		"Invalid file type. Allowed: JPG, PNG, GIF, WebP",
	}, v.ValidateImage(6<<20, "application/pdf"))
}
