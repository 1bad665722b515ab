package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
)

func TestHistoryRepo_CreateTx(t *testing.T) {
	ctx := context.Background()
	entry := &repository.HistoryEntry{
		ReturnID:  5,
		Status:    "approved",
		Notes:     "ok",
		ChangedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewHistoryRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(entry.ReturnID),
				gomock.Eq(entry.Status),
				gomock.Eq(entry.Notes),
				gomock.Eq(entry.ChangedAt)).
			Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, entry)
		assert.NoError(t, err)
	})

	t.Run("Tx Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewHistoryRepo(mockDB)
		txErr := errors.New("transaction error")

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, txErr)

		err := repo.CreateTx(ctx, mockTx, entry)
		assert.Equal(t, txErr, err)
	})
}

func TestHistoryRepo_GetByReturnID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewHistoryRepo(mockDB)
	expected := []*repository.HistoryEntry{
		{ID: 1, ReturnID: 5, Status: "pending"},
		{ID: 2, ReturnID: 5, Status: "approved"},
	}

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(5))).
		DoAndReturn(func(_ context.Context, dest any, query string, _ ...any) error {
			assert.Contains(t, query, "ORDER BY changed_at ASC, id ASC")
			*dest.(*[]*repository.HistoryEntry) = expected
			return nil
		})

	entries, err := repo.GetByReturnID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestReturnItemRepo_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := NewReturnItemRepo(mockDB)
	item := &repository.ReturnItem{ReturnID: 5, ItemName: "Mug", Quantity: 1, Images: `["a.png"]`}

	mockTx.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dest any, _ string, args ...any) error {
			assert.Equal(t, int64(5), args[0])
			assert.Equal(t, `["a.png"]`, args[10])
			*dest.(*int64) = 31
			return nil
		})

	id, err := repo.CreateTx(context.Background(), mockTx, item)
	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
}

func TestReturnItemRepo_UpdateInspectionTx(t *testing.T) {
	ctx := context.Background()
	item := &repository.ReturnItem{ID: 31, ReturnID: 5, Condition: "damaged", Notes: "cracked"}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewReturnItemRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), "damaged", "cracked", int64(31), int64(5)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateInspectionTx(ctx, mockTx, item))
	})

	t.Run("Foreign item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewReturnItemRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateInspectionTx(ctx, mockTx, item)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
