package returns

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Return is one customer return request against exactly one order.
type Return struct {
	ID              int64           `json:"id"`
	ReturnNumber    string          `json:"return_number"`
	OrderID         int64           `json:"order_id"`
	ContactID       int64           `json:"contact_id,omitempty"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	Status          Status          `json:"status"`
	ReturnReason    string          `json:"return_reason"`
	CustomerNotes   string          `json:"customer_notes,omitempty"`
	AdminNotes      string          `json:"admin_notes,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RefundMethod    RefundMethod    `json:"refund_method,omitempty"`
	RefundAmount    decimal.Decimal `json:"refund_amount"`
	RefundStatus    RefundStatus    `json:"refund_status"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	ShippingCarrier string          `json:"shipping_carrier,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	ReceivedAt      *time.Time      `json:"received_at,omitempty"`
	RefundedAt      *time.Time      `json:"refunded_at,omitempty"`
	Items           []Item          `json:"items,omitempty"`
}

// Item is one line of a return. Condition and Notes are only set by the
// receipt inspection.
type Item struct {
	ID              int64           `json:"id"`
	ReturnID        int64           `json:"return_id"`
	OrderItemID     int64           `json:"order_item_id"`
	ItemVariationID int64           `json:"item_variation_id"`
	ItemName        string          `json:"item_name"`
	SKU             string          `json:"sku,omitempty"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Reason          string          `json:"reason"`
	Condition       Condition       `json:"condition,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Images          []string        `json:"images,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type HistoryEntry struct {
	ID        int64     `json:"id"`
	ReturnID  int64     `json:"return_id"`
	Status    Status    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// Clone returns a deep copy so a mutation can be discarded on failure.
func (r *Return) Clone() *Return {
	c := *r
	c.ApprovedAt = cloneTime(r.ApprovedAt)
	c.ReceivedAt = cloneTime(r.ReceivedAt)
	c.RefundedAt = cloneTime(r.RefundedAt)
	if r.Items != nil {
		c.Items = make([]Item, len(r.Items))
		for i, it := range r.Items {
			it.Images = append([]string(nil), it.Images...)
			c.Items[i] = it
		}
	}
	return &c
}

func (r *Return) appendAdminNote(prefix, note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if prefix != "" {
		note = prefix + ": " + note
	}
	if r.AdminNotes == "" {
		r.AdminNotes = note
		return
	}
	r.AdminNotes += "\n\n" + note
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Order is the subset of a shop order the engine reads.
type Order struct {
	ID        int64     `json:"id"`
	ContactID int64     `json:"contact_id"`
	StatusID  float64   `json:"status_id"`
	CreatedAt time.Time `json:"created_at"`
}

const ItemTypeVariation = 1

type OrderItem struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	TypeID          int             `json:"type_id"`
	ItemVariationID int64           `json:"item_variation_id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku,omitempty"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
}

const (
	TransactionTypeRefund = 3
	PaymentStatusApproved = 2
	PaymentTypeCredit     = "credit"
)

type Payment struct {
	ID              int64           `json:"id"`
	MopID           int64           `json:"mop_id"`
	TransactionType int             `json:"transaction_type"`
	Status          int             `json:"status"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
	ReceivedAt      time.Time       `json:"received_at"`
	Type            string          `json:"type,omitempty"`
	ParentID        int64           `json:"parent_id,omitempty"`
}

// ReturnRequest is the customer-submitted form.
type ReturnRequest struct {
	OrderID       int64           `json:"order_id"`
	ContactID     int64           `json:"contact_id"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	ReturnReason  string          `json:"return_reason"`
	CustomerNotes string          `json:"customer_notes"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []RequestItem   `json:"items"`
}

type RequestItem struct {
	Selected        bool            `json:"selected"`
	OrderItemID     int64           `json:"order_item_id"`
	ItemVariationID int64           `json:"item_variation_id"`
	ItemName        string          `json:"item_name"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Reason          string          `json:"reason"`
	Images          []string        `json:"images"`
}

// ItemInspection is the receipt inspection result for one return item.
type ItemInspection struct {
	ItemID    int64     `json:"item_id"`
	Condition Condition `json:"condition"`
	Notes     string    `json:"notes"`
}

type RefundRequest struct {
	Method RefundMethod     `json:"method"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Note   string           `json:"note"`
}

type RefundResult struct {
	RefundID string          `json:"refund_id"`
	Method   RefundMethod    `json:"method"`
	Amount   decimal.Decimal `json:"amount"`
	Return   *Return         `json:"return"`
}

type RefundCheck struct {
	CanRefund bool             `json:"can_refund"`
	Reason    string           `json:"reason,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
}

type SearchFilter struct {
	Status     Status     `json:"status,omitempty"`
	DateFrom   *time.Time `json:"date_from,omitempty"`
	DateTo     *time.Time `json:"date_to,omitempty"`
	SearchTerm string     `json:"search,omitempty"`
}

type SearchResult struct {
	Data       []*Return `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

type Statistics struct {
	Total         int64           `json:"total"`
	Pending       int64           `json:"pending"`
	Approved      int64           `json:"approved"`
	Completed     int64           `json:"completed"`
	TotalRefunded decimal.Decimal `json:"total_refunded"`
}

// Tracking is the customer-facing view of a return.
type Tracking struct {
	Return      *Return        `json:"return"`
	StatusLabel string         `json:"status_label"`
	History     []HistoryEntry `json:"history"`
	Actions     []Action       `json:"actions"`
}

// ExportRow is one row of a return export, rendered by a separate writer.
type ExportRow struct {
	ReturnNumber string          `json:"return_number"`
	OrderID      int64           `json:"order_id"`
	Customer     string          `json:"customer"`
	Email        string          `json:"email"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ExportHeader names the ExportRow columns in order.
var ExportHeader = []string{"Return Number", "Order ID", "Customer", "Email", "Status", "Amount", "Created", "Updated"}

type LabelData struct {
	ReturnNumber    string `json:"return_number"`
	OrderID         int64  `json:"order_id"`
	CustomerName    string `json:"customer_name"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	ShippingCarrier string `json:"shipping_carrier,omitempty"`
	Barcode         string `json:"barcode"`
}

type Eligibility struct {
	Result           EligibilityResult `json:"result"`
	ReturnPeriodDays int               `json:"return_period_days"`
	PhotosRequired   bool              `json:"photos_required"`
	Items            []OrderItem       `json:"items,omitempty"`
	Reasons          []string          `json:"reasons,omitempty"`
}
