package amqp

import (
	"encoding/json"
	"testing"

	"finbook/internal/core"
)

func TestNewBudgetAlertEvent(t *testing.T) {
	alert := core.BudgetAlert{
		Level:    core.BudgetExceeded,
		Category: "food",
		Spent:    core.Money{Cents: 400_00},
		Limit:    core.Money{Cents: 300_00},
		Overage:  core.Money{Cents: 100_00},
	}

	e := NewBudgetAlertEvent("alice", alert)

	if e.Owner != "alice" {
		t.Errorf("Owner = %q, want %q", e.Owner, "alice")
	}
	if e.Level != "exceeded" {
		t.Errorf("Level = %q, want %q", e.Level, "exceeded")
	}
	if e.SpentCents != 400_00 || e.LimitCents != 300_00 || e.OverageCents != 100_00 {
		t.Errorf("cents = %d/%d/%d, want 40000/30000/10000", e.SpentCents, e.LimitCents, e.OverageCents)
	}
	if e.Timestamp.IsZero() {
		t.Error("Timestamp is zero, want set")
	}
}

func TestBudgetAlertEvent_JSONRoundTrip(t *testing.T) {
	alert := core.BudgetAlert{
		Level:     core.BudgetApproaching,
		Category:  "transport",
		Spent:     core.Money{Cents: 250_00},
		Limit:     core.Money{Cents: 300_00},
		Remaining: core.Money{Cents: 50_00},
	}

	data, err := NewBudgetAlertEvent("bob", alert).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var got BudgetAlertEvent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Owner != "bob" || got.Level != "approaching" || got.Category != "transport" {
		t.Errorf("decoded event = %+v, want bob/approaching/transport", got)
	}
	if got.RemainingCents != 50_00 {
		t.Errorf("RemainingCents = %d, want 5000", got.RemainingCents)
	}
}

func TestNewBalanceAlertEvent(t *testing.T) {
	alert := core.BalanceAlert{
		Level:   core.BalanceCritical,
		Balance: core.Money{Cents: -12_50},
	}

	e := NewBalanceAlertEvent("alice", alert)

	if e.Level != "critical" {
		t.Errorf("Level = %q, want %q", e.Level, "critical")
	}
	if e.BalanceCents != -12_50 {
		t.Errorf("BalanceCents = %d, want -1250", e.BalanceCents)
	}
}
