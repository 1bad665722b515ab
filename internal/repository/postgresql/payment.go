package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
)

type PaymentRepo struct {
	db db.DB
}

func NewPaymentRepo(db db.DB) storage.PaymentRepository {
	return &PaymentRepo{db: db}
}

// GetByOrderID lists payments linked to the order, oldest first.
func (r *PaymentRepo) GetByOrderID(ctx context.Context, orderID int64) ([]*repository.Payment, error) {
	var payments []*repository.Payment
	err := r.db.Select(ctx, &payments, `
        SELECT p.id, p.mop_id, p.transaction_type, p.status, p.currency, p.amount,
               p.received_at, p.type, p.parent_id
        FROM payments p
        JOIN order_payments op ON op.payment_id = p.id
        WHERE op.order_id = $1
        ORDER BY p.id ASC
    `, orderID)
	return payments, err
}

func (r *PaymentRepo) Create(ctx context.Context, p *repository.Payment) (int64, error) {
	var id int64
	err := r.db.Get(ctx, &id, `
        INSERT INTO payments (
            mop_id, transaction_type, status, currency, amount, received_at, type, parent_id
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, p.MopID, p.TransactionType, p.Status, p.Currency, p.Amount, p.ReceivedAt, p.Type, p.ParentID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert payment: %w", err)
	}
	return id, nil
}

func (r *PaymentRepo) LinkToOrder(ctx context.Context, paymentID, orderID int64) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_payments (order_id, payment_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, orderID, paymentID)
	if err != nil {
		return fmt.Errorf("failed to link payment %d to order %d: %w", paymentID, orderID, err)
	}
	return nil
}
