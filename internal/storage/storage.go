//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
)

type ReturnRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, row *repository.Return) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.Return, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Return, error)
	GetByReturnNumber(ctx context.Context, number string) (*repository.Return, error)
	GetByContactID(ctx context.Context, contactID int64) ([]*repository.Return, error)
	GetActiveByOrder(ctx context.Context, orderID int64) (*repository.Return, error)
	Search(ctx context.Context, filter repository.ReturnFilter, limit, offset int) ([]*repository.Return, int64, error)
	UpdateTx(ctx context.Context, tx db.Tx, row *repository.Return, expectedStatus string) error
	DeleteTx(ctx context.Context, tx db.Tx, id int64) error
	CountByStatus(ctx context.Context) ([]repository.StatusCount, error)
	SumRefunded(ctx context.Context) (decimal.Decimal, error)
}

type ReturnItemRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, item *repository.ReturnItem) (int64, error)
	GetByReturnID(ctx context.Context, returnID int64) ([]*repository.ReturnItem, error)
	GetByReturnIDTx(ctx context.Context, tx db.Tx, returnID int64) ([]*repository.ReturnItem, error)
	UpdateInspectionTx(ctx context.Context, tx db.Tx, item *repository.ReturnItem) error
	DeleteByReturnIDTx(ctx context.Context, tx db.Tx, returnID int64) error
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
	GetByReturnID(ctx context.Context, returnID int64) ([]*repository.HistoryEntry, error)
	DeleteByReturnIDTx(ctx context.Context, tx db.Tx, returnID int64) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]*repository.OrderItem, error)
}

type PaymentRepository interface {
	GetByOrderID(ctx context.Context, orderID int64) ([]*repository.Payment, error)
	Create(ctx context.Context, p *repository.Payment) (int64, error)
	LinkToOrder(ctx context.Context, paymentID, orderID int64) error
}

type OutboxTaskRepository interface {
	Create(ctx context.Context, task *repository.OutboxTask) error
	GetProcessableTasksTx(ctx context.Context, tx db.Tx, limit, maxAttempts int, staleBefore time.Time) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
