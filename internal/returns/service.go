package returns

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/metrics"
)

const (
	maxNumberAttempts = 5
	exportPageSize    = 10000
)

// Service drives the return state machine. It keeps no state between calls:
// every operation loads the return, decides, persists and forgets it.
type Service struct {
	store     Store
	orders    OrderGateway
	notifier  Notifier
	events    EventPublisher
	validator *Validator
	refunds   *RefundDispatcher
	opts      Options
	logger    *zap.Logger
	timeNow   func() time.Time
	newNumber func(time.Time) string
}

func NewService(
	store Store,
	orders OrderGateway,
	notifier Notifier,
	events EventPublisher,
	credits CreditIssuer,
	opts Options,
	logger *zap.Logger,
) *Service {
	opts = opts.withDefaults()
	s := &Service{
		store:     store,
		orders:    orders,
		notifier:  notifier,
		events:    events,
		opts:      opts,
		logger:    logger,
		timeNow:   time.Now,
		newNumber: GenerateReturnNumber,
	}
	s.validator = NewValidator(store, orders, opts, logger)
	s.validator.timeNow = s.now
	s.refunds = NewRefundDispatcher(store, orders, credits, notifier, opts, logger)
	s.refunds.timeNow = s.now
	return s
}

func (s *Service) now() time.Time { return s.timeNow() }

func (s *Service) Validator() *Validator { return s.validator }

func (s *Service) ReturnReasons() []string {
	return append([]string(nil), s.opts.ReturnReasons...)
}

// GenerateReturnNumber formats RET-<unix seconds>-<4 random digits>.
func GenerateReturnNumber(now time.Time) string {
	return fmt.Sprintf("RET-%d-%04d", now.Unix(), rand.Intn(10000))
}

func (s *Service) CreateReturn(ctx context.Context, req ReturnRequest) (*Return, error) {
	validation, err := s.validator.ValidateReturnRequest(ctx, req)
	if err != nil {
		s.fail("create", err)
		return nil, err
	}
	if !validation.Valid {
		return nil, ValidationFailed(validation.Message, validation.Errors)
	}

	now := s.now()
	r := &Return{
		OrderID:       req.OrderID,
		ContactID:     req.ContactID,
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Status:        StatusPending,
		ReturnReason:  req.ReturnReason,
		CustomerNotes: req.CustomerNotes,
		TotalAmount:   req.TotalAmount,
		RefundStatus:  RefundStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, it := range req.Items {
		if !it.Selected {
			continue
		}
		r.Items = append(r.Items, Item{
			OrderItemID:     it.OrderItemID,
			ItemVariationID: it.ItemVariationID,
			ItemName:        it.ItemName,
			SKU:             it.SKU,
			Quantity:        it.Quantity,
			Price:           it.Price,
			Reason:          it.Reason,
			Images:          append([]string(nil), it.Images...),
			CreatedAt:       now,
		})
	}

	entry := HistoryEntry{Status: StatusPending, Note: "Return request created", ChangedAt: now}

	var created *Return
	for attempt := 1; ; attempt++ {
		r.ReturnNumber = s.newNumber(now)
		created, err = s.store.Create(ctx, r, entry)
		if err == nil {
			break
		}
		if errors.Is(err, ErrDuplicateReturnNumber) && attempt < maxNumberAttempts {
			s.logger.Warn("return number collision, regenerating",
				zap.String("return_number", r.ReturnNumber),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if errors.Is(err, ErrActiveReturnExists) {
			return nil, ValidationFailed("Validation failed", map[string]string{
				"order": "A return request already exists for this order",
			})
		}
		s.fail("create", err)
		return nil, CollaboratorFailure("Failed to create return", err)
	}

	metrics.ReturnsCreatedTotal.Inc()
	s.logger.Info("return created",
		zap.Int64("return_id", created.ID),
		zap.String("return_number", created.ReturnNumber),
		zap.Int64("order_id", created.OrderID),
	)

	s.publish(ctx, EventReturnCreated, created)
	s.notify(ctx, NotifyCreated, created, nil)
	return created, nil
}

func (s *Service) Approve(ctx context.Context, id int64, note string) (*Return, error) {
	updated, err := s.transition(ctx, "approve", id, func(r *Return) (*HistoryEntry, error) {
		if r.Status != StatusPending {
			return nil, IllegalTransition("Only pending returns can be approved")
		}
		now := s.now()
		s.moveTo(r, StatusApproved, now)
		r.appendAdminNote("", note)
		if r.ApprovedAt == nil {
			r.ApprovedAt = &now
		}
		return &HistoryEntry{Status: StatusApproved, Note: note, ChangedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReturnApproved, updated)
	s.notify(ctx, NotifyApproved, updated, nil)
	return updated, nil
}

func (s *Service) Reject(ctx context.Context, id int64, reason, note string) (*Return, error) {
	reason = strings.TrimSpace(reason)
	updated, err := s.transition(ctx, "reject", id, func(r *Return) (*HistoryEntry, error) {
		if r.Status.IsTerminal() {
			return nil, IllegalTransition("Cannot reject completed return")
		}
		now := s.now()
		s.moveTo(r, StatusRejected, now)
		r.RejectionReason = reason
		r.appendAdminNote("", note)
		return &HistoryEntry{Status: StatusRejected, Note: note, ChangedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReturnStatusChanged, updated)
	s.notify(ctx, NotifyRejected, updated, map[string]string{"reason": reason})
	return updated, nil
}

func (s *Service) MarkShipped(ctx context.Context, id int64, trackingNumber, carrier string) (*Return, error) {
	updated, err := s.transition(ctx, "ship", id, func(r *Return) (*HistoryEntry, error) {
		if r.Status != StatusApproved {
			return nil, IllegalTransition("Only approved returns can be marked as shipped")
		}
		now := s.now()
		s.moveTo(r, StatusShipped, now)
		if trackingNumber != "" {
			r.TrackingNumber = trackingNumber
		}
		if carrier != "" {
			r.ShippingCarrier = carrier
		}
		return &HistoryEntry{Status: StatusShipped, Note: strings.TrimSpace(carrier + " " + trackingNumber), ChangedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReturnStatusChanged, updated)
	return updated, nil
}

// MarkReceived records receipt and the per-item inspection. Only approved or
// shipped returns can be received.
func (s *Service) MarkReceived(ctx context.Context, id int64, inspections []ItemInspection, qualityNotes string) (*Return, error) {
	updated, err := s.transition(ctx, "receive", id, func(r *Return) (*HistoryEntry, error) {
		if r.Status != StatusApproved && r.Status != StatusShipped {
			return nil, IllegalTransition("Only approved or shipped returns can be marked as received")
		}
		if err := applyInspections(r, inspections); err != nil {
			return nil, err
		}
		now := s.now()
		s.moveTo(r, StatusReceived, now)
		if r.ReceivedAt == nil {
			r.ReceivedAt = &now
		}
		r.appendAdminNote("Quality Notes", qualityNotes)
		return &HistoryEntry{Status: StatusReceived, Note: qualityNotes, ChangedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReturnReceived, updated)
	s.notify(ctx, NotifyReceived, updated, nil)
	return updated, nil
}

func applyInspections(r *Return, inspections []ItemInspection) error {
	fields := make(map[string]string)
	for i, in := range inspections {
		idx := -1
		for j := range r.Items {
			if r.Items[j].ID == in.ItemID {
				idx = j
				break
			}
		}
		if idx < 0 {
			fields[fmt.Sprintf("items.%d.item_id", i)] = "Item does not belong to this return"
			continue
		}
		if in.Condition != "" && !in.Condition.Valid() {
			fields[fmt.Sprintf("items.%d.condition", i)] = "Invalid item condition"
			continue
		}
		if in.Condition != "" {
			r.Items[idx].Condition = in.Condition
		}
		if in.Notes != "" {
			r.Items[idx].Notes = in.Notes
		}
	}
	if len(fields) > 0 {
		return ValidationFailed("Invalid item inspection", fields)
	}
	return nil
}

func (s *Service) Cancel(ctx context.Context, id int64, note string) (*Return, error) {
	updated, err := s.transition(ctx, "cancel", id, func(r *Return) (*HistoryEntry, error) {
		if !r.Status.CanBeCancelled() {
			return nil, IllegalTransition("Only pending or approved returns can be cancelled")
		}
		now := s.now()
		s.moveTo(r, StatusCancelled, now)
		r.appendAdminNote("", note)
		return &HistoryEntry{Status: StatusCancelled, Note: note, ChangedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReturnStatusChanged, updated)
	return updated, nil
}

func (s *Service) Complete(ctx context.Context, id int64, note string) (*Return, error) {
	updated, err := s.transition(ctx, "complete", id, func(r *Return) (*HistoryEntry, error) {
		if r.Status != StatusRefunded {
			return nil, IllegalTransition("Only refunded returns can be completed")
		}
		now := s.now()
		s.moveTo(r, StatusCompleted, now)
		r.appendAdminNote("", note)
		return &HistoryEntry{Status: StatusCompleted, Note: note, ChangedAt: now}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReturnStatusChanged, updated)
	return updated, nil
}

func (s *Service) ProcessRefund(ctx context.Context, id int64, req RefundRequest) (*RefundResult, error) {
	res, err := s.refunds.ProcessRefund(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventReturnStatusChanged, res.Return)
	return res, nil
}

// CheckRefund loads the return with its items and reports whether it can be
// refunded and for how much at most.
func (s *Service) CheckRefund(ctx context.Context, id int64) (RefundCheck, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return RefundCheck{}, err
	}
	return s.refunds.CanRefund(r), nil
}

func (s *Service) transition(ctx context.Context, op string, id int64, mutate Mutation) (*Return, error) {
	updated, err := s.store.Update(ctx, id, func(r *Return) (*HistoryEntry, error) {
		if !r.Status.Valid() {
			return nil, IllegalTransition(fmt.Sprintf("Unknown return status %q", r.Status))
		}
		return mutate(r)
	})
	if err != nil {
		s.fail(op, err)
		if errors.Is(err, ErrConcurrentUpdate) {
			return nil, IllegalTransition("Return was modified by another request")
		}
		return nil, wrapStore(err, "Return not found", "Failed to update return")
	}

	metrics.ReturnTransitionsTotal.WithLabelValues(string(updated.Status)).Inc()
	s.logger.Info("return status changed",
		zap.String("operation", op),
		zap.Int64("return_id", updated.ID),
		zap.String("return_number", updated.ReturnNumber),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func (s *Service) moveTo(r *Return, status Status, now time.Time) {
	r.Status = status
	r.UpdatedAt = now
}

func (s *Service) Get(ctx context.Context, id int64) (*Return, error) {
	r, err := s.store.FindByIDWithItems(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "Return not found", "Failed to load return")
	}
	return r, nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*Return, error) {
	r, err := s.store.FindByReturnNumber(ctx, number)
	if err != nil {
		return nil, wrapStore(err, "Return not found", "Failed to load return")
	}
	return r, nil
}

func (s *Service) StatusHistory(ctx context.Context, id int64) ([]HistoryEntry, error) {
	entries, err := s.store.History(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "Return not found", "Failed to load status history")
	}
	return entries, nil
}

func (s *Service) Track(ctx context.Context, id int64) (*Tracking, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.StatusHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Tracking{
		Return:      r,
		StatusLabel: r.Status.Label(),
		History:     history,
		Actions:     AvailableActions(r.Status),
	}, nil
}

func (s *Service) ListByContact(ctx context.Context, contactID int64) ([]*Return, error) {
	list, err := s.store.FindByContact(ctx, contactID)
	if err != nil {
		return nil, CollaboratorFailure("Failed to load returns", err)
	}
	return list, nil
}

func (s *Service) Search(ctx context.Context, filter SearchFilter, page, perPage int) (*SearchResult, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ValidationFailed("Invalid status filter", map[string]string{"status": "Unknown status"})
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	res, err := s.store.Search(ctx, filter, page, perPage)
	if err != nil {
		return nil, CollaboratorFailure("Failed to search returns", err)
	}
	return res, nil
}

// Delete removes a return and its items regardless of status.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.fail("delete", err)
		return wrapStore(err, "Return not found", "Failed to delete return")
	}
	s.logger.Info("return deleted", zap.Int64("return_id", id))
	return nil
}

func (s *Service) CheckEligibility(ctx context.Context, orderID int64) (*Eligibility, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, CollaboratorFailure("Failed to load order", err)
	}
	if order == nil {
		return nil, NotFound("Order not found")
	}

	result, err := s.validator.ValidateOrderForReturn(ctx, order)
	if err != nil {
		return nil, err
	}
	out := &Eligibility{
		Result:           result,
		ReturnPeriodDays: s.validator.ReturnPeriodDays(),
		PhotosRequired:   s.validator.PhotosRequired(),
	}
	if !result.Eligible {
		return out, nil
	}

	items, err := s.orders.OrderItems(ctx, order.ID)
	if err != nil {
		return nil, CollaboratorFailure("Failed to load order items", err)
	}
	for _, it := range items {
		if s.validator.CanReturnItem(it) {
			out.Items = append(out.Items, it)
		}
	}
	out.Reasons = s.ReturnReasons()
	return out, nil
}

// Statistics is recomputed from the store on every call.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return Statistics{}, CollaboratorFailure("Failed to count returns", err)
	}
	refunded, err := s.store.SumRefunded(ctx)
	if err != nil {
		return Statistics{}, CollaboratorFailure("Failed to sum refunds", err)
	}

	var stats Statistics
	for _, n := range counts {
		stats.Total += n
	}
	stats.Pending = counts[StatusPending]
	stats.Approved = counts[StatusApproved]
	stats.Completed = counts[StatusCompleted]
	stats.TotalRefunded = refunded
	return stats, nil
}

func (s *Service) ExportRows(ctx context.Context, filter SearchFilter) ([]ExportRow, error) {
	res, err := s.Search(ctx, filter, 1, exportPageSize)
	if err != nil {
		return nil, err
	}
	rows := make([]ExportRow, 0, len(res.Data))
	for _, r := range res.Data {
		rows = append(rows, ExportRow{
			ReturnNumber: r.ReturnNumber,
			OrderID:      r.OrderID,
			Customer:     r.CustomerName,
			Email:        r.CustomerEmail,
			Status:       r.Status.Label(),
			Amount:       r.TotalAmount,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return rows, nil
}

func (s *Service) LabelData(ctx context.Context, id int64) (*LabelData, error) {
	r, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "Return not found", "Failed to load return")
	}
	return &LabelData{
		ReturnNumber:    r.ReturnNumber,
		OrderID:         r.OrderID,
		CustomerName:    r.CustomerName,
		TrackingNumber:  r.TrackingNumber,
		ShippingCarrier: r.ShippingCarrier,
		Barcode:         r.ReturnNumber,
	}, nil
}

func (s *Service) publish(ctx context.Context, typ EventType, r *Return) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, Event{
		Type:         typ,
		ReturnID:     r.ID,
		ReturnNumber: r.ReturnNumber,
		Status:       r.Status,
		OccurredAt:   s.now(),
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("publish_event").Inc()
		s.logger.Warn("failed to publish return event",
			zap.String("event", string(typ)),
			zap.Int64("return_id", r.ID),
			zap.Error(err),
		)
	}
}

func (s *Service) notify(ctx context.Context, kind NotificationKind, r *Return, extra map[string]string) {
	sendNotification(ctx, s.notifier, s.opts, s.logger, kind, r, extra)
}

func sendNotification(ctx context.Context, n Notifier, opts Options, logger *zap.Logger, kind NotificationKind, r *Return, extra map[string]string) {
	if n == nil || !opts.SendNotifications {
		return
	}
	if err := n.Notify(ctx, Notification{Kind: kind, Return: r, Extra: extra}); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("notify").Inc()
		logger.Warn("failed to queue notification",
			zap.String("kind", string(kind)),
			zap.Int64("return_id", r.ID),
			zap.Error(err),
		)
		return
	}
	metrics.NotificationsQueuedTotal.WithLabelValues(string(kind)).Inc()
}

func (s *Service) fail(op string, err error) {
	if KindOf(err) != KindCollaboratorFailure {
		s.logger.Info("return operation refused", zap.String("operation", op), zap.Error(err))
		return
	}
	metrics.OperationErrorsTotal.WithLabelValues(op).Inc()
	s.logger.Error("return operation failed", zap.String("operation", op), zap.Error(err))
}
