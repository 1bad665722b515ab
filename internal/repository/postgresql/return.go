package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
)

const returnColumns = `id, return_number, order_id, contact_id, customer_email, customer_name,
        customer_phone, status, return_reason, customer_notes, admin_notes, rejection_reason,
        total_amount, refund_method, refund_amount, refund_status, tracking_number,
        shipping_carrier, created_at, updated_at, approved_at, received_at, refunded_at`

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) storage.ReturnRepository {
	return &ReturnRepo{db: db}
}

func (r *ReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.Return) (int64, error) {
	var id int64
	err := tx.Get(ctx, &id, `
        INSERT INTO returns (
            return_number, order_id, contact_id, customer_email, customer_name, customer_phone,
            status, return_reason, customer_notes, admin_notes, rejection_reason, total_amount,
            refund_method, refund_amount, refund_status, tracking_number, shipping_carrier,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING id
    `, ret.ReturnNumber, ret.OrderID, ret.ContactID, ret.CustomerEmail, ret.CustomerName, ret.CustomerPhone,
		ret.Status, ret.ReturnReason, ret.CustomerNotes, ret.AdminNotes, ret.RejectionReason, ret.TotalAmount,
		ret.RefundMethod, ret.RefundAmount, ret.RefundStatus, ret.TrackingNumber, ret.ShippingCarrier,
		ret.CreatedAt, ret.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			if violatedConstraint(err) == activeReturnIndex {
				return 0, repository.ErrActiveReturnExists
			}
			return 0, repository.ErrDuplicateKey
		}
		return 0, fmt.Errorf("failed to insert return: %w", err)
	}
	return id, nil
}

func (r *ReturnRepo) GetByID(ctx context.Context, id int64) (*repository.Return, error) {
	var ret repository.Return
	err := r.db.Get(ctx, &ret, "SELECT "+returnColumns+" FROM returns WHERE id = $1", id)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// GetByIDTx locks the row until the transaction ends.
func (r *ReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Return, error) {
	var ret repository.Return
	err := tx.Get(ctx, &ret, "SELECT "+returnColumns+" FROM returns WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByReturnNumber(ctx context.Context, number string) (*repository.Return, error) {
	var ret repository.Return
	err := r.db.Get(ctx, &ret, "SELECT "+returnColumns+" FROM returns WHERE return_number = $1", number)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByContactID(ctx context.Context, contactID int64) ([]*repository.Return, error) {
	var list []*repository.Return
	err := r.db.Select(ctx, &list, `
        SELECT `+returnColumns+` FROM returns
        WHERE contact_id = $1
        ORDER BY created_at DESC
    `, contactID)
	return list, err
}

// GetActiveByOrder finds a return for the order that still blocks a new one,
// whoever filed it.
func (r *ReturnRepo) GetActiveByOrder(ctx context.Context, orderID int64) (*repository.Return, error) {
	var ret repository.Return
	err := r.db.Get(ctx, &ret, `
        SELECT `+returnColumns+` FROM returns
        WHERE order_id = $1 AND status NOT IN ('rejected', 'cancelled')
        ORDER BY created_at DESC
        LIMIT 1
    `, orderID)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) Search(ctx context.Context, filter repository.ReturnFilter, limit, offset int) ([]*repository.Return, int64, error) {
	where, args := buildReturnFilter(filter)

	var total int64
	if err := r.db.Get(ctx, &total, "SELECT COUNT(*) FROM returns"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count returns: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM returns%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		returnColumns, where, len(args)-1, len(args))

	var list []*repository.Return
	if err := r.db.Select(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to search returns: %w", err)
	}
	return list, total, nil
}

func buildReturnFilter(f repository.ReturnFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		args = append(args, "%"+term+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(return_number ILIKE $%d OR customer_email ILIKE $%d OR customer_name ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdateTx writes the row only if its status is still expectedStatus.
func (r *ReturnRepo) UpdateTx(ctx context.Context, tx db.Tx, ret *repository.Return, expectedStatus string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE returns
        SET
            status = $1,
            admin_notes = $2,
            rejection_reason = $3,
            refund_method = $4,
            refund_amount = $5,
            refund_status = $6,
            tracking_number = $7,
            shipping_carrier = $8,
            updated_at = $9,
            approved_at = $10,
            received_at = $11,
            refunded_at = $12
        WHERE id = $13 AND status = $14
    `, ret.Status, ret.AdminNotes, ret.RejectionReason, ret.RefundMethod, ret.RefundAmount, ret.RefundStatus,
		ret.TrackingNumber, ret.ShippingCarrier, ret.UpdatedAt, ret.ApprovedAt, ret.ReceivedAt, ret.RefundedAt,
		ret.ID, expectedStatus)
	if err != nil {
		return fmt.Errorf("failed to update return %d: %w", ret.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *ReturnRepo) DeleteTx(ctx context.Context, tx db.Tx, id int64) error {
	tag, err := tx.Exec(ctx, "DELETE FROM returns WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete return %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ReturnRepo) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	var counts []repository.StatusCount
	err := r.db.Select(ctx, &counts, `
        SELECT status, COUNT(*) AS count
        FROM returns
        GROUP BY status
    `)
	return counts, err
}

func (r *ReturnRepo) SumRefunded(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.Get(ctx, &sum, `
        SELECT COALESCE(SUM(refund_amount), 0)
        FROM returns
        WHERE status IN ('refunded', 'completed')
    `)
	return sum, err
}
