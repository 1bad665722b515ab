// Package notify turns engine notifications, domain events and audit records
// into outbox tasks. The publisher relays them to Kafka.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
)

// NotificationMessage is what downstream mailers consume.
type NotificationMessage struct {
	Kind          returns.NotificationKind `json:"kind"`
	ReturnID      int64                    `json:"return_id"`
	ReturnNumber  string                   `json:"return_number"`
	Status        returns.Status           `json:"status"`
	StatusLabel   string                   `json:"status_label"`
	CustomerEmail string                   `json:"customer_email"`
	CustomerName  string                   `json:"customer_name"`
	TotalAmount   string                   `json:"total_amount"`
	Reason        string                   `json:"reason,omitempty"`
	Extra         map[string]string        `json:"extra,omitempty"`
	QueuedAt      time.Time                `json:"queued_at"`
}

type OutboxNotifier struct {
	repo    storage.OutboxTaskRepository
	topic   string
	logger  *zap.Logger
	timeNow func() time.Time
}

func NewOutboxNotifier(repo storage.OutboxTaskRepository, topic string, logger *zap.Logger) *OutboxNotifier {
	return &OutboxNotifier{repo: repo, topic: topic, logger: logger, timeNow: time.Now}
}

func (n *OutboxNotifier) Notify(ctx context.Context, note returns.Notification) error {
	if note.Return == nil {
		return fmt.Errorf("notification %s without return", note.Kind)
	}
	r := note.Return
	msg := NotificationMessage{
		Kind:          note.Kind,
		ReturnID:      r.ID,
		ReturnNumber:  r.ReturnNumber,
		Status:        r.Status,
		StatusLabel:   r.Status.Label(),
		CustomerEmail: r.CustomerEmail,
		CustomerName:  r.CustomerName,
		TotalAmount:   r.TotalAmount.StringFixed(2),
		Extra:         note.Extra,
		QueuedAt:      n.timeNow().UTC(),
	}
	if note.Kind == returns.NotifyRejected {
		msg.Reason = r.RejectionReason
	}

	if err := enqueue(ctx, n.repo, n.topic, msg); err != nil {
		return err
	}
	n.logger.Debug("notification queued",
		zap.String("kind", string(note.Kind)),
		zap.String("return_number", r.ReturnNumber),
	)
	return nil
}

type OutboxEvents struct {
	repo  storage.OutboxTaskRepository
	topic string
}

func NewOutboxEvents(repo storage.OutboxTaskRepository, topic string) *OutboxEvents {
	return &OutboxEvents{repo: repo, topic: topic}
}

func (e *OutboxEvents) Publish(ctx context.Context, ev returns.Event) error {
	return enqueue(ctx, e.repo, e.topic, ev)
}

// OutboxAudit stores audit batches as one task per record.
type OutboxAudit struct {
	repo  storage.OutboxTaskRepository
	topic string
}

func NewOutboxAudit(repo storage.OutboxTaskRepository, topic string) *OutboxAudit {
	return &OutboxAudit{repo: repo, topic: topic}
}

func (a *OutboxAudit) WriteBatch(ctx context.Context, batch []repository.AuditLogPayload) error {
	for _, entry := range batch {
		if err := enqueue(ctx, a.repo, a.topic, entry); err != nil {
			return err
		}
	}
	return nil
}

func enqueue(ctx context.Context, repo storage.OutboxTaskRepository, topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox payload: %w", err)
	}
	task := &repository.OutboxTask{
		Status:  repository.TaskStatusCreated,
		Payload: payload,
		Topic:   topic,
	}
	if err := repo.Create(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", topic, err)
	}
	return nil
}
