package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage/mocks"
)

func TestOrderGateway(t *testing.T) {
	ctx := context.Background()

	newGateway := func(t *testing.T) (*OrderGateway, *mock_storage.MockOrderRepository, *mock_storage.MockPaymentRepository) {
		ctrl := gomock.NewController(t)
		orders := mock_storage.NewMockOrderRepository(ctrl)
		payments := mock_storage.NewMockPaymentRepository(ctrl)
		return NewOrderGateway(orders, payments), orders, payments
	}

	t.Run("unknown order", func(t *testing.T) {
		g, orders, _ := newGateway(t)
		orders.EXPECT().GetByID(ctx, int64(1)).Return(nil, repository.ErrObjectNotFound)

		_, err := g.FindOrderByID(ctx, 1)
		assert.ErrorIs(t, err, returns.ErrNotFound)
	})

	t.Run("order items", func(t *testing.T) {
		g, orders, _ := newGateway(t)
		orders.EXPECT().GetItems(ctx, int64(100)).Return([]*repository.OrderItem{
			{ID: 1, OrderID: 100, TypeID: 1, Name: "Mug", Quantity: 1, Price: decimal.NewFromInt(10)},
		}, nil)

		items, err := g.OrderItems(ctx, 100)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Mug", items[0].Name)
	})

	t.Run("create refund payment", func(t *testing.T) {
		g, _, payments := newGateway(t)
		payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *repository.Payment) (int64, error) {
			require.NotNil(t, p.ParentID)
			assert.Equal(t, int64(500), *p.ParentID)
			assert.True(t, p.Amount.Equal(decimal.NewFromInt(-10)))
			return 777, nil
		})

		created, err := g.CreatePayment(ctx, returns.Payment{Amount: decimal.NewFromInt(-10), ParentID: 500})
		require.NoError(t, err)
		assert.Equal(t, int64(777), created.ID)
		assert.Equal(t, int64(500), created.ParentID)
	})

	t.Run("payment without parent", func(t *testing.T) {
		g, _, payments := newGateway(t)
		payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *repository.Payment) (int64, error) {
			assert.Nil(t, p.ParentID)
			return 1, nil
		})

		_, err := g.CreatePayment(ctx, returns.Payment{})
		require.NoError(t, err)
	})

	t.Run("payments error", func(t *testing.T) {
		g, _, payments := newGateway(t)
		dbErr := errors.New("database error")
		payments.EXPECT().GetByOrderID(ctx, int64(100)).Return(nil, dbErr)

		_, err := g.OrderPayments(ctx, 100)
		assert.ErrorIs(t, err, dbErr)
	})
}
