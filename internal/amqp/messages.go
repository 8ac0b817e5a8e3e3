package amqp

import (
	"encoding/json"
	"time"

	"finbook/internal/core"
)

// BudgetAlertEvent is the wire form of a per-category budget alert. Amounts
// are carried as integer cents, matching the persisted representation.
type BudgetAlertEvent struct {
	Owner          string    `json:"owner"`
	Level          string    `json:"level"`
	Category       string    `json:"category"`
	SpentCents     int64     `json:"spent_cents"`
	LimitCents     int64     `json:"limit_cents"`
	OverageCents   int64     `json:"overage_cents,omitempty"`
	RemainingCents int64     `json:"remaining_cents,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// BalanceAlertEvent is the wire form of an overall-balance alert.
type BalanceAlertEvent struct {
	Owner        string    `json:"owner"`
	Level        string    `json:"level"`
	BalanceCents int64     `json:"balance_cents"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewBudgetAlertEvent converts a domain alert into its wire form.
func NewBudgetAlertEvent(owner string, a core.BudgetAlert) *BudgetAlertEvent {
	return &BudgetAlertEvent{
		Owner:          owner,
		Level:          string(a.Level),
		Category:       a.Category,
		SpentCents:     a.Spent.Cents,
		LimitCents:     a.Limit.Cents,
		OverageCents:   a.Overage.Cents,
		RemainingCents: a.Remaining.Cents,
		Timestamp:      time.Now(),
	}
}

// NewBalanceAlertEvent converts a domain balance alert into its wire form.
func NewBalanceAlertEvent(owner string, a core.BalanceAlert) *BalanceAlertEvent {
	return &BalanceAlertEvent{
		Owner:        owner,
		Level:        string(a.Level),
		BalanceCents: a.Balance.Cents,
		Timestamp:    time.Now(),
	}
}

func (e *BudgetAlertEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *BalanceAlertEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
