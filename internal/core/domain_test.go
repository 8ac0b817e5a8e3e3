package core

import (
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	good := NewTransaction(Expense, "Food", Money{Cents: 100}, "groceries", "alice")
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if good.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if good.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}

	bads := []Transaction{
		{Kind: "transfer", Category: "Food", Amount: Money{Cents: 1}},
		{Kind: Income, Category: "", Amount: Money{Cents: 1}},
		{Kind: Income, Category: "   ", Amount: Money{Cents: 1}},
		{Kind: Expense, Category: "Food", Amount: Money{Cents: 0}},
		{Kind: Expense, Category: "Food", Amount: Money{Cents: -5}},
	}
	for i, tr := range bads {
		if err := tr.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestNewTransactionTrimsCategory(t *testing.T) {
	tr := NewTransaction(Income, "  Salary  ", Money{Cents: 1000}, "", "alice")
	if tr.Category != "Salary" {
		t.Fatalf("expected trimmed category, got %q", tr.Category)
	}
}

func TestNewTransactionUniqueIDs(t *testing.T) {
	a := NewTransaction(Income, "Salary", Money{Cents: 1}, "", "alice")
	b := NewTransaction(Income, "Salary", Money{Cents: 1}, "", "alice")
	if a.ID == b.ID {
		t.Fatalf("expected distinct IDs, both %q", a.ID)
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := NewBudget("Food", Money{Cents: 30000}, "alice").Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Budget{Category: "", Limit: Money{Cents: 1}}).Validate(); err == nil {
		t.Fatalf("expected error for empty category")
	}
	if err := (Budget{Category: "Food", Limit: Money{Cents: 0}}).Validate(); err == nil {
		t.Fatalf("expected error for zero limit")
	}
}

func TestNewUserOwnsEmptyWallet(t *testing.T) {
	u := NewUser("alice", "secret")
	if u.Wallet.Owner != "alice" {
		t.Fatalf("wallet owner = %q, want alice", u.Wallet.Owner)
	}
	if len(u.Wallet.Transactions) != 0 || len(u.Wallet.Budgets) != 0 {
		t.Fatalf("expected empty wallet")
	}
}
