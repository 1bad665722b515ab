//go:generate mockgen -source ./ports.go -destination=./mocks/ports.go -package=mock_returns
package returns

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Mutation changes a locked copy of a return and reports the history entry
// to append. Returning an error discards the change.
type Mutation func(r *Return) (*HistoryEntry, error)

// Store persists returns. Update must be atomic per return id: the mutation
// sees the latest committed state and no other Update for the same id can
// interleave with it.
type Store interface {
	FindByID(ctx context.Context, id int64) (*Return, error)
	FindByIDWithItems(ctx context.Context, id int64) (*Return, error)
	FindByReturnNumber(ctx context.Context, number string) (*Return, error)
	FindByContact(ctx context.Context, contactID int64) ([]*Return, error)
	FindActiveByOrder(ctx context.Context, orderID int64) (*Return, error)
	Search(ctx context.Context, filter SearchFilter, page, perPage int) (*SearchResult, error)
	Create(ctx context.Context, r *Return, entry HistoryEntry) (*Return, error)
	Update(ctx context.Context, id int64, mutate Mutation) (*Return, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	SumRefunded(ctx context.Context) (decimal.Decimal, error)
	History(ctx context.Context, id int64) ([]HistoryEntry, error)
}

type OrderGateway interface {
	FindOrderByID(ctx context.Context, id int64) (*Order, error)
	OrderItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	OrderPayments(ctx context.Context, orderID int64) ([]Payment, error)
	CreatePayment(ctx context.Context, p Payment) (*Payment, error)
	LinkPaymentToOrder(ctx context.Context, paymentID, orderID int64) error
}

type NotificationKind string

const (
	NotifyCreated         NotificationKind = "created"
	NotifyApproved        NotificationKind = "approved"
	NotifyRejected        NotificationKind = "rejected"
	NotifyReceived        NotificationKind = "received"
	NotifyRefundProcessed NotificationKind = "refund-processed"
)

type Notification struct {
	Kind   NotificationKind  `json:"kind"`
	Return *Return           `json:"return"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// Notifier composes and sends messages. The engine only decides which kind
// is due.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type EventType string

const (
	EventReturnCreated       EventType = "ReturnCreated"
	EventReturnApproved      EventType = "ReturnApproved"
	EventReturnReceived      EventType = "ReturnReceived"
	EventReturnStatusChanged EventType = "ReturnStatusChanged"
)

type Event struct {
	Type         EventType `json:"type"`
	ReturnID     int64     `json:"return_id"`
	ReturnNumber string    `json:"return_number"`
	Status       Status    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}

// CreditIssuer issues store credit and exchange references.
type CreditIssuer interface {
	IssueStoreCredit(ctx context.Context, r *Return, amount decimal.Decimal) (string, error)
	IssueExchange(ctx context.Context, r *Return, amount decimal.Decimal) (string, error)
}
