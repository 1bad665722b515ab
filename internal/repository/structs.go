package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrObjectNotFound     = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrActiveReturnExists = errors.New("order already has an active return")
	ErrConflict           = errors.New("row was changed by another transaction")
)

type Return struct {
	ID              int64           `db:"id"`
	ReturnNumber    string          `db:"return_number"`
	OrderID         int64           `db:"order_id"`
	ContactID       int64           `db:"contact_id"`
	CustomerEmail   string          `db:"customer_email"`
	CustomerName    string          `db:"customer_name"`
	CustomerPhone   string          `db:"customer_phone"`
	Status          string          `db:"status"`
	ReturnReason    string          `db:"return_reason"`
	CustomerNotes   string          `db:"customer_notes"`
	AdminNotes      string          `db:"admin_notes"`
	RejectionReason string          `db:"rejection_reason"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	RefundMethod    string          `db:"refund_method"`
	RefundAmount    decimal.Decimal `db:"refund_amount"`
	RefundStatus    string          `db:"refund_status"`
	TrackingNumber  string          `db:"tracking_number"`
	ShippingCarrier string          `db:"shipping_carrier"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	ReceivedAt      *time.Time      `db:"received_at"`
	RefundedAt      *time.Time      `db:"refunded_at"`
}

// ReturnItem keeps images as a JSON array in a text column.
type ReturnItem struct {
	ID              int64           `db:"id"`
	ReturnID        int64           `db:"return_id"`
	OrderItemID     int64           `db:"order_item_id"`
	ItemVariationID int64           `db:"item_variation_id"`
	ItemName        string          `db:"item_name"`
	SKU             string          `db:"sku"`
	Quantity        int             `db:"quantity"`
	Price           decimal.Decimal `db:"price"`
	Reason          string          `db:"reason"`
	Condition       string          `db:"condition"`
	Notes           string          `db:"notes"`
	Images          string          `db:"images"`
	CreatedAt       time.Time       `db:"created_at"`
}

type HistoryEntry struct {
	ID        int64     `db:"id"`
	ReturnID  int64     `db:"return_id"`
	Status    string    `db:"status"`
	Notes     string    `db:"notes"`
	ChangedAt time.Time `db:"changed_at"`
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type ReturnFilter struct {
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	SearchTerm string
}

type Order struct {
	ID        int64     `db:"id"`
	ContactID int64     `db:"contact_id"`
	StatusID  float64   `db:"status_id"`
	CreatedAt time.Time `db:"created_at"`
}

type OrderItem struct {
	ID              int64           `db:"id"`
	OrderID         int64           `db:"order_id"`
	TypeID          int             `db:"type_id"`
	ItemVariationID int64           `db:"item_variation_id"`
	Name            string          `db:"name"`
	SKU             string          `db:"sku"`
	Quantity        int             `db:"quantity"`
	Price           decimal.Decimal `db:"price"`
}

type Payment struct {
	ID              int64           `db:"id"`
	MopID           int64           `db:"mop_id"`
	TransactionType int             `db:"transaction_type"`
	Status          int             `db:"status"`
	Currency        string          `db:"currency"`
	Amount          decimal.Decimal `db:"amount"`
	ReceivedAt      time.Time       `db:"received_at"`
	Type            string          `db:"type"`
	ParentID        *int64          `db:"parent_id"`
}
