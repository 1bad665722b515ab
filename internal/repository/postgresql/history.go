package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/storage"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) storage.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO return_status_history (
            return_id, status, notes, changed_at
        ) VALUES ($1, $2, $3, $4)
    `, entry.ReturnID, entry.Status, entry.Notes, entry.ChangedAt)
	return err
}

func (r *HistoryRepo) GetByReturnID(ctx context.Context, returnID int64) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT id, return_id, status, notes, changed_at
        FROM return_status_history
        WHERE return_id = $1
        ORDER BY changed_at ASC, id ASC
    `, returnID)
	return entries, err
}

func (r *HistoryRepo) DeleteByReturnIDTx(ctx context.Context, tx db.Tx, returnID int64) error {
	_, err := tx.Exec(ctx, "DELETE FROM return_status_history WHERE return_id = $1", returnID)
	return err
}
