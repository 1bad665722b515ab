package storage

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

// OrderGateway exposes shop orders and payments to the returns engine.
type OrderGateway struct {
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
}

func NewOrderGateway(orderRepo OrderRepository, paymentRepo PaymentRepository) *OrderGateway {
	return &OrderGateway{orderRepo: orderRepo, paymentRepo: paymentRepo}
}

func (g *OrderGateway) FindOrderByID(ctx context.Context, id int64) (*returns.Order, error) {
	row, err := g.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to get order")
	}
	return &returns.Order{
		ID:        row.ID,
		ContactID: row.ContactID,
		StatusID:  row.StatusID,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (g *OrderGateway) OrderItems(ctx context.Context, orderID int64) ([]returns.OrderItem, error) {
	rows, err := g.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	items := make([]returns.OrderItem, len(rows))
	for i, row := range rows {
		items[i] = returns.OrderItem{
			ID:              row.ID,
			OrderID:         row.OrderID,
			TypeID:          row.TypeID,
			ItemVariationID: row.ItemVariationID,
			Name:            row.Name,
			SKU:             row.SKU,
			Quantity:        row.Quantity,
			Price:           row.Price,
		}
	}
	return items, nil
}

func (g *OrderGateway) OrderPayments(ctx context.Context, orderID int64) ([]returns.Payment, error) {
	rows, err := g.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order payments: %w", err)
	}
	payments := make([]returns.Payment, len(rows))
	for i, row := range rows {
		payments[i] = toDomainPayment(row)
	}
	return payments, nil
}

func (g *OrderGateway) CreatePayment(ctx context.Context, p returns.Payment) (*returns.Payment, error) {
	row := &repository.Payment{
		MopID:           p.MopID,
		TransactionType: p.TransactionType,
		Status:          p.Status,
		Currency:        p.Currency,
		Amount:          p.Amount,
		ReceivedAt:      p.ReceivedAt,
		Type:            p.Type,
	}
	if p.ParentID != 0 {
		parent := p.ParentID
		row.ParentID = &parent
	}
	id, err := g.paymentRepo.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	row.ID = id
	created := toDomainPayment(row)
	return &created, nil
}

func (g *OrderGateway) LinkPaymentToOrder(ctx context.Context, paymentID, orderID int64) error {
	return g.paymentRepo.LinkToOrder(ctx, paymentID, orderID)
}

func toDomainPayment(row *repository.Payment) returns.Payment {
	p := returns.Payment{
		ID:              row.ID,
		MopID:           row.MopID,
		TransactionType: row.TransactionType,
		Status:          row.Status,
		Currency:        row.Currency,
		Amount:          row.Amount,
		ReceivedAt:      row.ReceivedAt,
		Type:            row.Type,
	}
	if row.ParentID != nil {
		p.ParentID = *row.ParentID
	}
	return p
}
