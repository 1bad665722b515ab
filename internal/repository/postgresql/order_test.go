package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
)

func TestOrderRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewOrderRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(100))).
			DoAndReturn(func(_ context.Context, dest any, _ string, _ ...any) error {
				*dest.(*repository.Order) = repository.Order{ID: 100, ContactID: 7, StatusID: 7.4}
				return nil
			})

		order, err := repo.GetByID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, 7.4, order.StatusID)
	})

	t.Run("Not Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewOrderRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 100)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("DB Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewOrderRepo(mockDB)
		dbErr := errors.New("database error")

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dbErr)

		_, err := repo.GetByID(ctx, 100)
		assert.Equal(t, dbErr, err)
	})
}

func TestOrderRepo_GetItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewOrderRepo(mockDB)
	expected := []*repository.OrderItem{{ID: 1, OrderID: 100, TypeID: 1, Name: "Mug", Price: decimal.NewFromInt(10)}}

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(100))).
		DoAndReturn(func(_ context.Context, dest any, _ string, _ ...any) error {
			*dest.(*[]*repository.OrderItem) = expected
			return nil
		})

	items, err := repo.GetItems(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestPaymentRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewPaymentRepo(mockDB)
	parent := int64(500)
	p := &repository.Payment{MopID: 4, TransactionType: 3, Status: 2, Currency: "EUR", Amount: decimal.NewFromInt(-10), Type: "credit", ParentID: &parent}

	mockDB.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dest any, _ string, args ...any) error {
			assert.Len(t, args, 8)
			assert.Equal(t, &parent, args[7])
			*dest.(*int64) = 777
			return nil
		})

	id, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(777), id)
}

func TestPaymentRepo_LinkToOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewPaymentRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(int64(777))).
			Return(nil, nil)

		assert.NoError(t, repo.LinkToOrder(ctx, 777, 100))
	})

	t.Run("DB Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewPaymentRepo(mockDB)
		dbErr := errors.New("database error")

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dbErr)

		err := repo.LinkToOrder(ctx, 777, 100)
		assert.ErrorIs(t, err, dbErr)
	})
}
