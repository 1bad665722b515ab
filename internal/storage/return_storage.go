package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

// ReturnStorage persists returns, their items and status history.
type ReturnStorage struct {
	db          db.DB
	returnRepo  ReturnRepository
	itemRepo    ReturnItemRepository
	historyRepo HistoryRepository
	timeNow     func() time.Time
}

func NewReturnStorage(db db.DB, returnRepo ReturnRepository, itemRepo ReturnItemRepository, historyRepo HistoryRepository) *ReturnStorage {
	return &ReturnStorage{
		db:          db,
		returnRepo:  returnRepo,
		itemRepo:    itemRepo,
		historyRepo: historyRepo,
		timeNow:     time.Now,
	}
}

func (s *ReturnStorage) FindByID(ctx context.Context, id int64) (*returns.Return, error) {
	row, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to get return")
	}
	return toDomainReturn(row), nil
}

func (s *ReturnStorage) FindByIDWithItems(ctx context.Context, id int64) (*returns.Return, error) {
	ret, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.itemRepo.GetByReturnID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get return items: %w", err)
	}
	if ret.Items, err = toDomainItems(rows); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *ReturnStorage) FindByReturnNumber(ctx context.Context, number string) (*returns.Return, error) {
	row, err := s.returnRepo.GetByReturnNumber(ctx, number)
	if err != nil {
		return nil, notFound(err, "failed to get return")
	}
	return toDomainReturn(row), nil
}

func (s *ReturnStorage) FindByContact(ctx context.Context, contactID int64) ([]*returns.Return, error) {
	rows, err := s.returnRepo.GetByContactID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact returns: %w", err)
	}
	return toDomainReturns(rows), nil
}

// FindActiveByOrder returns nil, nil when the order has no blocking return.
func (s *ReturnStorage) FindActiveByOrder(ctx context.Context, orderID int64) (*returns.Return, error) {
	row, err := s.returnRepo.GetActiveByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active return: %w", err)
	}
	return toDomainReturn(row), nil
}

func (s *ReturnStorage) Search(ctx context.Context, filter returns.SearchFilter, page, perPage int) (*returns.SearchResult, error) {
	rows, total, err := s.returnRepo.Search(ctx, repository.ReturnFilter{
		Status:     string(filter.Status),
		DateFrom:   filter.DateFrom,
		DateTo:     filter.DateTo,
		SearchTerm: filter.SearchTerm,
	}, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &returns.SearchResult{
		Data:       toDomainReturns(rows),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}, nil
}

// Create stores the return, its items and the first history entry in one
// transaction.
func (s *ReturnStorage) Create(ctx context.Context, r *returns.Return, entry returns.HistoryEntry) (*returns.Return, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	created := r.Clone()
	id, err := s.returnRepo.CreateTx(ctx, tx, fromDomainReturn(created))
	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, repository.ErrActiveReturnExists) {
			return nil, returns.ErrActiveReturnExists
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, returns.ErrDuplicateReturnNumber
		}
		return nil, fmt.Errorf("failed to add return: %w", err)
	}
	created.ID = id

	for i := range created.Items {
		created.Items[i].ReturnID = id
		row, err := fromDomainItem(created.Items[i])
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
		itemID, err := s.itemRepo.CreateTx(ctx, tx, row)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("failed to add return item: %w", err)
		}
		created.Items[i].ID = itemID
	}

	if err := s.historyRepo.CreateTx(ctx, tx, fromDomainHistory(id, entry)); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to add return history entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// Update locks the return row, applies mutate to a fresh copy and writes the
// result back guarded by the status it was read with.
func (s *ReturnStorage) Update(ctx context.Context, id int64, mutate returns.Mutation) (*returns.Return, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	row, err := s.returnRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, notFound(err, "failed to lock return")
	}
	itemRows, err := s.itemRepo.GetByReturnIDTx(ctx, tx, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to get return items: %w", err)
	}

	current := toDomainReturn(row)
	if current.Items, err = toDomainItems(itemRows); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	before := current.Clone()

	entry, err := mutate(current)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if current.UpdatedAt.Equal(before.UpdatedAt) {
		current.UpdatedAt = s.timeNow()
	}

	if err := s.returnRepo.UpdateTx(ctx, tx, fromDomainReturn(current), string(before.Status)); err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, repository.ErrConflict) {
			return nil, returns.ErrConcurrentUpdate
		}
		return nil, fmt.Errorf("failed to update return: %w", err)
	}

	for i, it := range current.Items {
		if i >= len(before.Items) || (it.Condition == before.Items[i].Condition && it.Notes == before.Items[i].Notes) {
			continue
		}
		err := s.itemRepo.UpdateInspectionTx(ctx, tx, &repository.ReturnItem{
			ID:        it.ID,
			ReturnID:  id,
			Condition: string(it.Condition),
			Notes:     it.Notes,
		})
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("failed to update return item: %w", err)
		}
	}

	if entry != nil {
		if entry.ChangedAt.IsZero() {
			entry.ChangedAt = s.timeNow()
		}
		if err := s.historyRepo.CreateTx(ctx, tx, fromDomainHistory(id, *entry)); err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("failed to add return history entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return current, nil
}

func (s *ReturnStorage) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := s.itemRepo.DeleteByReturnIDTx(ctx, tx, id); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to delete return items: %w", err)
	}
	if err := s.historyRepo.DeleteByReturnIDTx(ctx, tx, id); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to delete return history: %w", err)
	}
	if err := s.returnRepo.DeleteTx(ctx, tx, id); err != nil {
		_ = tx.Rollback(ctx)
		return notFound(err, "failed to delete return")
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *ReturnStorage) CountByStatus(ctx context.Context) (map[returns.Status]int64, error) {
	rows, err := s.returnRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count returns: %w", err)
	}
	counts := make(map[returns.Status]int64, len(rows))
	for _, row := range rows {
		counts[returns.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (s *ReturnStorage) SumRefunded(ctx context.Context) (decimal.Decimal, error) {
	sum, err := s.returnRepo.SumRefunded(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum refunds: %w", err)
	}
	return sum, nil
}

func (s *ReturnStorage) History(ctx context.Context, id int64) ([]returns.HistoryEntry, error) {
	rows, err := s.historyRepo.GetByReturnID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get return history: %w", err)
	}
	entries := make([]returns.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = returns.HistoryEntry{
			ID:        row.ID,
			ReturnID:  row.ReturnID,
			Status:    returns.Status(row.Status),
			Note:      row.Notes,
			ChangedAt: row.ChangedAt,
		}
	}
	return entries, nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrObjectNotFound) {
		return returns.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toDomainReturn(row *repository.Return) *returns.Return {
	return &returns.Return{
		ID:              row.ID,
		ReturnNumber:    row.ReturnNumber,
		OrderID:         row.OrderID,
		ContactID:       row.ContactID,
		CustomerEmail:   row.CustomerEmail,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		Status:          returns.Status(row.Status),
		ReturnReason:    row.ReturnReason,
		CustomerNotes:   row.CustomerNotes,
		AdminNotes:      row.AdminNotes,
		RejectionReason: row.RejectionReason,
		TotalAmount:     row.TotalAmount,
		RefundMethod:    returns.RefundMethod(row.RefundMethod),
		RefundAmount:    row.RefundAmount,
		RefundStatus:    returns.RefundStatus(row.RefundStatus),
		TrackingNumber:  row.TrackingNumber,
		ShippingCarrier: row.ShippingCarrier,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		ApprovedAt:      row.ApprovedAt,
		ReceivedAt:      row.ReceivedAt,
		RefundedAt:      row.RefundedAt,
	}
}

func toDomainReturns(rows []*repository.Return) []*returns.Return {
	out := make([]*returns.Return, len(rows))
	for i, row := range rows {
		out[i] = toDomainReturn(row)
	}
	return out
}

func fromDomainReturn(r *returns.Return) *repository.Return {
	return &repository.Return{
		ID:              r.ID,
		ReturnNumber:    r.ReturnNumber,
		OrderID:         r.OrderID,
		ContactID:       r.ContactID,
		CustomerEmail:   r.CustomerEmail,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Status:          string(r.Status),
		ReturnReason:    r.ReturnReason,
		CustomerNotes:   r.CustomerNotes,
		AdminNotes:      r.AdminNotes,
		RejectionReason: r.RejectionReason,
		TotalAmount:     r.TotalAmount,
		RefundMethod:    string(r.RefundMethod),
		RefundAmount:    r.RefundAmount,
		RefundStatus:    string(r.RefundStatus),
		TrackingNumber:  r.TrackingNumber,
		ShippingCarrier: r.ShippingCarrier,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		ApprovedAt:      r.ApprovedAt,
		ReceivedAt:      r.ReceivedAt,
		RefundedAt:      r.RefundedAt,
	}
}

func toDomainItems(rows []*repository.ReturnItem) ([]returns.Item, error) {
	items := make([]returns.Item, len(rows))
	for i, row := range rows {
		var images []string
		if row.Images != "" {
			if err := json.Unmarshal([]byte(row.Images), &images); err != nil {
				return nil, fmt.Errorf("failed to decode images of return item %d: %w", row.ID, err)
			}
		}
		items[i] = returns.Item{
			ID:              row.ID,
			ReturnID:        row.ReturnID,
			OrderItemID:     row.OrderItemID,
			ItemVariationID: row.ItemVariationID,
			ItemName:        row.ItemName,
			SKU:             row.SKU,
			Quantity:        row.Quantity,
			Price:           row.Price,
			Reason:          row.Reason,
			Condition:       returns.Condition(row.Condition),
			Notes:           row.Notes,
			Images:          images,
			CreatedAt:       row.CreatedAt,
		}
	}
	return items, nil
}

func fromDomainItem(it returns.Item) (*repository.ReturnItem, error) {
	images := "[]"
	if len(it.Images) > 0 {
		raw, err := json.Marshal(it.Images)
		if err != nil {
			return nil, fmt.Errorf("failed to encode item images: %w", err)
		}
		images = string(raw)
	}
	return &repository.ReturnItem{
		ID:              it.ID,
		ReturnID:        it.ReturnID,
		OrderItemID:     it.OrderItemID,
		ItemVariationID: it.ItemVariationID,
		ItemName:        it.ItemName,
		SKU:             it.SKU,
		Quantity:        it.Quantity,
		Price:           it.Price,
		Reason:          it.Reason,
		Condition:       string(it.Condition),
		Notes:           it.Notes,
		Images:          images,
		CreatedAt:       it.CreatedAt,
	}, nil
}

func fromDomainHistory(returnID int64, e returns.HistoryEntry) *repository.HistoryEntry {
	return &repository.HistoryEntry{
		ReturnID:  returnID,
		Status:    string(e.Status),
		Notes:     e.Note,
		ChangedAt: e.ChangedAt,
	}
}
