package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
)

// OrderRepo reads the shop's orders. Returns never write to them.
type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT id, contact_id, status_id, created_at FROM orders WHERE id = $1", id)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetItems(ctx context.Context, orderID int64) ([]*repository.OrderItem, error) {
	var items []*repository.OrderItem
	err := r.db.Select(ctx, &items, `
        SELECT id, order_id, type_id, item_variation_id, name, sku, quantity, price
        FROM order_items
        WHERE order_id = $1
        ORDER BY id ASC
    `, orderID)
	return items, err
}
