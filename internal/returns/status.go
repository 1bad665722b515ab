package returns

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusShipped    Status = "shipped"
	StatusReceived   Status = "received"
	StatusInspecting Status = "inspecting"
	StatusRefunded   Status = "refunded"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusApproved,
		StatusRejected,
		StatusShipped,
		StatusReceived,
		StatusInspecting,
		StatusRefunded,
		StatusCompleted,
		StatusCancelled,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusShipped, StatusReceived,
		StatusInspecting, StatusRefunded, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Label is the display string shown to customers and admins.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending Approval"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusShipped:
		return "Shipped Back"
	case StatusReceived:
		return "Received"
	case StatusInspecting:
		return "Under Inspection"
	case StatusRefunded:
		return "Refunded"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// IsTerminal reports whether no further rejection is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRefunded, StatusRejected, StatusCancelled:
		return true
	case StatusPending, StatusApproved, StatusShipped, StatusReceived, StatusInspecting:
		return false
	}
	return false
}

func (s Status) CanBeRefunded() bool {
	return s == StatusReceived
}

func (s Status) CanBeCancelled() bool {
	switch s {
	case StatusPending, StatusApproved:
		return true
	}
	return false
}

// ExcludedFromDuplicateCheck reports whether a return in this status allows
// a new return to be filed for the same order.
func (s Status) ExcludedFromDuplicateCheck() bool {
	return s == StatusRejected || s == StatusCancelled
}

type Action string

const (
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionMarkShipped  Action = "mark_shipped"
	ActionMarkReceived Action = "mark_received"
	ActionRefund       Action = "refund"
	ActionCancel       Action = "cancel"
)

// AvailableActions derives the actions an admin may take purely from status.
func AvailableActions(s Status) []Action {
	actions := make([]Action, 0, 4)
	switch s {
	case StatusPending:
		actions = append(actions, ActionApprove, ActionReject)
	case StatusApproved:
		actions = append(actions, ActionMarkShipped)
	}
	if s == StatusShipped || s == StatusApproved {
		actions = append(actions, ActionMarkReceived)
	}
	if s.CanBeRefunded() {
		actions = append(actions, ActionRefund)
	}
	if s.CanBeCancelled() {
		actions = append(actions, ActionCancel)
	}
	return actions
}

// StatusOption pairs a status with its label for select inputs.
type StatusOption struct {
	Value Status `json:"value"`
	Label string `json:"label"`
}

func AvailableStatuses() []StatusOption {
	all := Statuses()
	out := make([]StatusOption, 0, len(all))
	for _, s := range all {
		out = append(out, StatusOption{Value: s, Label: s.Label()})
	}
	return out
}

type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionUsedGood  Condition = "used_good"
	ConditionUsedFair  Condition = "used_fair"
	ConditionDamaged   Condition = "damaged"
	ConditionDefective Condition = "defective"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsedGood, ConditionUsedFair, ConditionDamaged, ConditionDefective:
		return true
	}
	return false
}

type RefundMethod string

const (
	RefundOriginalPayment RefundMethod = "original_payment"
	RefundStoreCredit     RefundMethod = "store_credit"
	RefundExchange        RefundMethod = "exchange"
)

func (m RefundMethod) Valid() bool {
	switch m {
	case RefundOriginalPayment, RefundStoreCredit, RefundExchange:
		return true
	}
	return false
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusCompleted RefundStatus = "completed"
)
