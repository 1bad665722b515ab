package returns

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const deadlineLayout = "2006-01-02"

type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Message  string `json:"message"`
	Deadline string `json:"deadline,omitempty"`
	DaysLeft int    `json:"days_left,omitempty"`
}

type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message"`
}

// Validator decides whether an order may be returned and whether a submitted
// request is well formed.
type Validator struct {
	store   Store
	orders  OrderGateway
	opts    Options
	check   *validator.Validate
	logger  *zap.Logger
	timeNow func() time.Time
}

func NewValidator(store Store, orders OrderGateway, opts Options, logger *zap.Logger) *Validator {
	return &Validator{
		store:   store,
		orders:  orders,
		opts:    opts.withDefaults(),
		check:   validator.New(),
		logger:  logger,
		timeNow: time.Now,
	}
}

func (v *Validator) ReturnPeriodDays() int { return v.opts.ReturnPeriodDays }

func (v *Validator) PhotosRequired() bool { return v.opts.RequirePhotos }

// ValidateOrderForReturn fails closed: a nil order is never eligible. The
// error is only set when the return store could not be queried.
func (v *Validator) ValidateOrderForReturn(ctx context.Context, order *Order) (EligibilityResult, error) {
	if order == nil {
		return EligibilityResult{Message: "Order not found"}, nil
	}

	if !slices.Contains(v.opts.CompletedOrderStatuses, order.StatusID) {
		return EligibilityResult{Message: "Order must be completed before return"}, nil
	}

	period := v.opts.ReturnPeriodDays
	elapsed := wholeDays(order.CreatedAt, v.timeNow())
	if elapsed > period {
		return EligibilityResult{
			Message: fmt.Sprintf("Return period has expired (max %d days)", period),
		}, nil
	}

	existing, err := v.store.FindActiveByOrder(ctx, order.ID)
	if err != nil {
		return EligibilityResult{}, CollaboratorFailure("Failed to check existing returns", err)
	}
	if existing != nil && !existing.Status.ExcludedFromDuplicateCheck() {
		return EligibilityResult{Message: "A return request already exists for this order"}, nil
	}

	return EligibilityResult{
		Eligible: true,
		Message:  "Order is eligible for return",
		Deadline: order.CreatedAt.AddDate(0, 0, period).Format(deadlineLayout),
		DaysLeft: period - elapsed,
	}, nil
}

// ValidateReturnRequest runs every check and collects all failures keyed by
// field path, e.g. "items.2.reason".
func (v *Validator) ValidateReturnRequest(ctx context.Context, req ReturnRequest) (ValidationResult, error) {
	errs := make(map[string]string)

	if req.OrderID == 0 {
		errs["order_id"] = "Order ID is required"
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		errs["customer_email"] = "Email is required"
	} else if err := v.check.Var(email, "email"); err != nil {
		errs["customer_email"] = "Invalid email format"
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		errs["customer_name"] = "Name is required"
	}

	if strings.TrimSpace(req.ReturnReason) == "" {
		errs["return_reason"] = "Return reason is required"
	}

	if len(req.Items) == 0 {
		errs["items"] = "At least one item must be selected"
	} else {
		selected := 0
		for i, item := range req.Items {
			if !item.Selected {
				continue
			}
			selected++
			if item.Quantity < 1 {
				errs[fmt.Sprintf("items.%d.quantity", i)] = "Invalid quantity"
			}
			if strings.TrimSpace(item.Reason) == "" {
				errs[fmt.Sprintf("items.%d.reason", i)] = "Return reason is required for each item"
			}
			if item.Price.IsNegative() {
				errs[fmt.Sprintf("items.%d.price", i)] = "Invalid price"
			}
			if v.opts.RequirePhotos && len(item.Images) == 0 {
				errs[fmt.Sprintf("items.%d.images", i)] = "At least one photo is required for each item"
			}
		}
		if selected == 0 {
			errs["items"] = "No items selected for return"
		}
	}

	if req.OrderID != 0 {
		order, err := v.orders.FindOrderByID(ctx, req.OrderID)
		switch {
		case errors.Is(err, ErrNotFound) || (err == nil && order == nil):
			errs["order"] = "Order not found"
		case err != nil:
			return ValidationResult{}, CollaboratorFailure("Failed to load order", err)
		default:
			eligibility, err := v.ValidateOrderForReturn(ctx, order)
			if err != nil {
				return ValidationResult{}, err
			}
			if !eligibility.Eligible {
				errs["order"] = eligibility.Message
			}
		}
	}

	if len(errs) > 0 {
		v.logger.Debug("return request rejected",
			zap.Int64("order_id", req.OrderID),
			zap.Int("errors", len(errs)),
		)
		return ValidationResult{Errors: errs, Message: "Validation failed"}, nil
	}
	return ValidationResult{Valid: true, Message: "Validation passed"}, nil
}

// CanReturnItem reports whether an order line can be offered for return.
// Only physical variation lines qualify.
func (v *Validator) CanReturnItem(item OrderItem) bool {
	return item.TypeID == ItemTypeVariation
}

// ValidateImage returns the list of violations for an uploaded image; an
// empty list means the file is acceptable.
func (v *Validator) ValidateImage(size int64, mimeType string) []string {
	var violations []string
	if size > v.opts.MaxImageSize {
		violations = append(violations, fmt.Sprintf("File size exceeds maximum allowed (%dMB)", v.opts.MaxImageSize>>20))
	}
	if !slices.Contains(v.opts.AllowedImageTypes, strings.ToLower(mimeType)) {
		violations = append(violations, "Invalid file type. Allowed: JPG, PNG, GIF, WebP")
	}
	return violations
}

func wholeDays(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}
