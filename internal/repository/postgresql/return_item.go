package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
)

const itemColumns = `id, return_id, order_item_id, item_variation_id, item_name, sku, quantity,
        price, reason, condition, notes, images, created_at`

type ReturnItemRepo struct {
	db db.DB
}

func NewReturnItemRepo(db db.DB) storage.ReturnItemRepository {
	return &ReturnItemRepo{db: db}
}

func (r *ReturnItemRepo) CreateTx(ctx context.Context, tx db.Tx, item *repository.ReturnItem) (int64, error) {
	var id int64
	err := tx.Get(ctx, &id, `
        INSERT INTO return_items (
            return_id, order_item_id, item_variation_id, item_name, sku, quantity,
            price, reason, condition, notes, images, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `, item.ReturnID, item.OrderItemID, item.ItemVariationID, item.ItemName, item.SKU, item.Quantity,
		item.Price, item.Reason, item.Condition, item.Notes, item.Images, item.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert return item: %w", err)
	}
	return id, nil
}

func (r *ReturnItemRepo) GetByReturnID(ctx context.Context, returnID int64) ([]*repository.ReturnItem, error) {
	var items []*repository.ReturnItem
	err := r.db.Select(ctx, &items, `
        SELECT `+itemColumns+` FROM return_items
        WHERE return_id = $1
        ORDER BY id ASC
    `, returnID)
	return items, err
}

func (r *ReturnItemRepo) GetByReturnIDTx(ctx context.Context, tx db.Tx, returnID int64) ([]*repository.ReturnItem, error) {
	var items []*repository.ReturnItem
	err := tx.Select(ctx, &items, `
        SELECT `+itemColumns+` FROM return_items
        WHERE return_id = $1
        ORDER BY id ASC
    `, returnID)
	return items, err
}

// UpdateInspectionTx only touches the fields set by receipt inspection.
func (r *ReturnItemRepo) UpdateInspectionTx(ctx context.Context, tx db.Tx, item *repository.ReturnItem) error {
	tag, err := tx.Exec(ctx, `
        UPDATE return_items
        SET condition = $1, notes = $2
        WHERE id = $3 AND return_id = $4
    `, item.Condition, item.Notes, item.ID, item.ReturnID)
	if err != nil {
		return fmt.Errorf("failed to update return item %d: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ReturnItemRepo) DeleteByReturnIDTx(ctx context.Context, tx db.Tx, returnID int64) error {
	_, err := tx.Exec(ctx, "DELETE FROM return_items WHERE return_id = $1", returnID)
	return err
}
