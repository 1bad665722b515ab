package returns

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/metrics"
)

var errNoPayment = errors.New("no payment found for order")

// RefundDispatcher settles money for received returns.
type RefundDispatcher struct {
	store    Store
	orders   OrderGateway
	credits  CreditIssuer
	notifier Notifier
	opts     Options
	logger   *zap.Logger
	timeNow  func() time.Time
}

func NewRefundDispatcher(store Store, orders OrderGateway, credits CreditIssuer, notifier Notifier, opts Options, logger *zap.Logger) *RefundDispatcher {
	if credits == nil {
		credits = NewReferenceIssuer(logger)
	}
	return &RefundDispatcher{
		store:    store,
		orders:   orders,
		credits:  credits,
		notifier: notifier,
		opts:     opts.withDefaults(),
		logger:   logger,
		timeNow:  time.Now,
	}
}

// ProcessRefund runs the refund strategy while the return is locked, so a
// failed strategy leaves the return untouched and a second call sees the
// first one's result.
func (d *RefundDispatcher) ProcessRefund(ctx context.Context, id int64, req RefundRequest) (*RefundResult, error) {
	method := req.Method
	if method == "" {
		method = RefundOriginalPayment
	}

	var (
		refundID string
		amount   decimal.Decimal
	)
	updated, err := d.store.Update(ctx, id, func(r *Return) (*HistoryEntry, error) {
		if !r.Status.CanBeRefunded() {
			return nil, IllegalTransition("Return cannot be refunded in current status")
		}
		if r.RefundStatus == RefundStatusCompleted {
			return nil, IllegalTransition("Refund already processed")
		}

		amount = r.TotalAmount
		if req.Amount != nil {
			amount = *req.Amount
		}
		// Callers may pass the amount signed either way; only the magnitude counts.
		amount = amount.Abs()
		if !amount.IsPositive() {
			return nil, ValidationFailed("Refund amount must be greater than zero", map[string]string{
				"amount": "Refund amount must be greater than zero",
			})
		}

		var err error
		switch method {
		case RefundOriginalPayment:
			refundID, err = d.refundOriginalPayment(ctx, r, amount)
		case RefundStoreCredit:
			refundID, err = d.credits.IssueStoreCredit(ctx, r, amount)
		case RefundExchange:
			refundID, err = d.credits.IssueExchange(ctx, r, amount)
		default:
			return nil, ValidationFailed("Invalid refund method", map[string]string{"method": "Invalid refund method"})
		}
		if err == nil && refundID == "" {
			err = errors.New("strategy returned no refund reference")
		}
		if err != nil {
			return nil, CollaboratorFailure("Failed to process refund", err)
		}

		now := d.timeNow()
		r.Status = StatusRefunded
		r.UpdatedAt = now
		r.RefundMethod = method
		r.RefundAmount = amount
		r.RefundStatus = RefundStatusCompleted
		if r.RefundedAt == nil {
			r.RefundedAt = &now
		}
		r.appendAdminNote("Refund Note", req.Note)
		return &HistoryEntry{Status: StatusRefunded, Note: req.Note, ChangedAt: now}, nil
	})
	if err != nil {
		if KindOf(err) == KindCollaboratorFailure {
			metrics.OperationErrorsTotal.WithLabelValues("refund").Inc()
			d.logger.Error("refund failed",
				zap.Int64("return_id", id),
				zap.String("method", string(method)),
				zap.Error(err),
			)
		}
		if errors.Is(err, ErrConcurrentUpdate) {
			return nil, IllegalTransition("Return was modified by another request")
		}
		return nil, wrapStore(err, "Return not found", "Failed to process refund")
	}

	metrics.RefundsProcessedTotal.WithLabelValues(string(method)).Inc()
	d.logger.Info("refund processed",
		zap.Int64("return_id", updated.ID),
		zap.String("refund_id", refundID),
		zap.String("amount", amount.String()),
		zap.String("method", string(method)),
	)

	sendNotification(ctx, d.notifier, d.opts, d.logger, NotifyRefundProcessed, updated, map[string]string{
		"refund_id": refundID,
		"amount":    amount.String(),
		"method":    string(method),
	})

	return &RefundResult{RefundID: refundID, Method: method, Amount: amount, Return: updated}, nil
}

// refundOriginalPayment books a negative counter-payment against the first
// payment of the order.
func (d *RefundDispatcher) refundOriginalPayment(ctx context.Context, r *Return, amount decimal.Decimal) (string, error) {
	order, err := d.orders.FindOrderByID(ctx, r.OrderID)
	if err != nil {
		return "", fmt.Errorf("find order %d: %w", r.OrderID, err)
	}
	if order == nil {
		return "", fmt.Errorf("find order %d: %w", r.OrderID, ErrNotFound)
	}

	payments, err := d.orders.OrderPayments(ctx, order.ID)
	if err != nil {
		return "", fmt.Errorf("order payments %d: %w", order.ID, err)
	}
	if len(payments) == 0 {
		return "", errNoPayment
	}
	original := payments[0]

	refund, err := d.orders.CreatePayment(ctx, Payment{
		MopID:           original.MopID,
		TransactionType: TransactionTypeRefund,
		Status:          PaymentStatusApproved,
		Currency:        original.Currency,
		Amount:          amount.Neg(),
		ReceivedAt:      d.timeNow(),
		Type:            PaymentTypeCredit,
		ParentID:        original.ID,
	})
	if err != nil {
		return "", fmt.Errorf("create refund payment: %w", err)
	}
	if refund == nil || refund.ID == 0 {
		return "", errors.New("create refund payment: no payment id")
	}

	if err := d.orders.LinkPaymentToOrder(ctx, refund.ID, order.ID); err != nil {
		return "", fmt.Errorf("link payment %d to order %d: %w", refund.ID, order.ID, err)
	}
	return strconv.FormatInt(refund.ID, 10), nil
}

// CalculateRefundAmount is the sum of price times quantity over the items,
// independent of the declared total.
func (d *RefundDispatcher) CalculateRefundAmount(r *Return) decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (d *RefundDispatcher) CanRefund(r *Return) RefundCheck {
	if !r.Status.CanBeRefunded() {
		return RefundCheck{Reason: "Return must be received before refund"}
	}
	if r.RefundStatus == RefundStatusCompleted {
		return RefundCheck{Reason: "Refund already processed"}
	}
	maxAmount := d.CalculateRefundAmount(r)
	return RefundCheck{CanRefund: true, MaxAmount: &maxAmount}
}

// ReferenceIssuer hands out opaque credit references. Voucher and exchange
// order creation happen downstream of the refund-processed notification.
type ReferenceIssuer struct {
	logger *zap.Logger
}

func NewReferenceIssuer(logger *zap.Logger) *ReferenceIssuer {
	return &ReferenceIssuer{logger: logger}
}

func (i *ReferenceIssuer) IssueStoreCredit(_ context.Context, r *Return, amount decimal.Decimal) (string, error) {
	ref := "SC-" + uuid.NewString()
	i.logger.Info("store credit issued",
		zap.Int64("return_id", r.ID),
		zap.String("reference", ref),
		zap.String("amount", amount.String()),
	)
	return ref, nil
}

func (i *ReferenceIssuer) IssueExchange(_ context.Context, r *Return, amount decimal.Decimal) (string, error) {
	ref := "EX-" + uuid.NewString()
	i.logger.Info("exchange credit issued",
		zap.Int64("return_id", r.ID),
		zap.String("reference", ref),
		zap.String("amount", amount.String()),
	)
	return ref, nil
}
