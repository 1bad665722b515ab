package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
)

var fixedNow = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

func TestOutboxTaskRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := &OutboxTaskRepo{db: mockDB, timeNow: func() time.Time { return fixedNow }}
	task := &repository.OutboxTask{Topic: "returns.notifications", Payload: []byte(`{"kind":"created"}`)}

	mockDB.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any(), repository.TaskStatusCreated, task.Payload, "returns.notifications", fixedNow, fixedNow).
		Return(pgconn.CommandTag("INSERT 0 1"), nil)

	require.NoError(t, repo.Create(context.Background(), task))
	assert.NotEqual(t, uuid.Nil, task.ID)
}

func TestOutboxTaskRepo_GetProcessableTasksTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := NewOutboxTaskRepo(mockDB)
	expected := []*repository.OutboxTask{{ID: uuid.New(), Status: repository.TaskStatusFailed, Attempts: 1}}
	staleBefore := fixedNow.Add(-5 * time.Minute)

	mockTx.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(),
			repository.TaskStatusCreated, repository.TaskStatusFailed, 3,
			repository.TaskStatusProcessing, staleBefore, 10).
		DoAndReturn(func(_ context.Context, dest any, query string, _ ...any) error {
			assert.Contains(t, query, "FOR UPDATE SKIP LOCKED")
			assert.Contains(t, query, "updated_at < $5")
			*dest.(*[]*repository.OutboxTask) = expected
			return nil
		})

	tasks, err := repo.GetProcessableTasksTx(context.Background(), mockTx, 10, 3, staleBefore)
	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
}

func TestOutboxTaskRepo_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	completed := fixedNow

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := &OutboxTaskRepo{db: mockDB, timeNow: func() time.Time { return fixedNow }}

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), id, repository.TaskStatusDone, 1, gomock.Nil(), &completed, fixedNow).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateTaskStatus(ctx, id, repository.TaskStatusDone, 1, nil, &completed))
	})

	t.Run("Missing task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewOutboxTaskRepo(mockDB)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateTaskStatusTx(ctx, mockTx, id, repository.TaskStatusProcessing, 0, nil, nil)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
