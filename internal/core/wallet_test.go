package core

import "testing"

func expense(category string, cents int64) Transaction {
	return NewTransaction(Expense, category, Money{Cents: cents}, "", "alice")
}

func income(category string, cents int64) Transaction {
	return NewTransaction(Income, category, Money{Cents: cents}, "", "alice")
}

func TestWalletBalanceIdentity(t *testing.T) {
	var w Wallet
	w.AddTransaction(income("Salary", 500000))
	w.AddTransaction(expense("Food", 120050))
	w.AddTransaction(expense("Transport", 3000))
	w.AddTransaction(income("Gift", 2500))

	gotBalance := w.Balance()
	want := w.TotalIncome().Sub(w.TotalExpenses())
	if gotBalance != want {
		t.Fatalf("balance %v != income-expenses %v", gotBalance, want)
	}
	if gotBalance.Cents != 500000+2500-120050-3000 {
		t.Fatalf("unexpected balance %v", gotBalance)
	}
}

func TestWalletBalanceCanGoNegative(t *testing.T) {
	var w Wallet
	w.AddTransaction(expense("Rent", 80000))
	if got := w.Balance(); got.Cents != -80000 {
		t.Fatalf("expected -80000, got %d", got.Cents)
	}
}

func TestWalletSetBudgetReplaces(t *testing.T) {
	var w Wallet
	w.SetBudget(NewBudget("Food", Money{Cents: 30000}, "alice"))
	w.SetBudget(NewBudget("Transport", Money{Cents: 10000}, "alice"))
	w.SetBudget(NewBudget("Food", Money{Cents: 45000}, "alice"))

	if len(w.Budgets) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(w.Budgets))
	}
	b, ok := w.BudgetForCategory("Food")
	if !ok {
		t.Fatalf("expected Food budget")
	}
	if b.Limit.Cents != 45000 {
		t.Fatalf("expected replaced limit 45000, got %d", b.Limit.Cents)
	}
	// Replace moves the budget to the end of the iteration order.
	if w.Budgets[len(w.Budgets)-1].Category != "Food" {
		t.Fatalf("expected Food last after replace")
	}
}

func TestWalletExpensesForCategoryIsolation(t *testing.T) {
	var w Wallet
	w.AddTransaction(expense("Food", 1000))
	w.AddTransaction(expense("Food", 2500))
	w.AddTransaction(expense("Transport", 700))
	w.AddTransaction(income("Food", 9999)) // income never counts as spending

	if got := w.ExpensesForCategory("Food"); got.Cents != 3500 {
		t.Fatalf("Food: expected 3500, got %d", got.Cents)
	}
	if got := w.ExpensesForCategory("Transport"); got.Cents != 700 {
		t.Fatalf("Transport: expected 700, got %d", got.Cents)
	}
	if got := w.ExpensesForCategory("food"); got.Cents != 0 {
		t.Fatalf("matching is case-sensitive, got %d", got.Cents)
	}
}

func TestWalletBudgetForCategoryAbsent(t *testing.T) {
	var w Wallet
	if _, ok := w.BudgetForCategory("Food"); ok {
		t.Fatalf("expected absent budget")
	}
}

func TestWalletSumByCategoryOrder(t *testing.T) {
	var w Wallet
	w.AddTransaction(expense("Food", 100))
	w.AddTransaction(expense("Transport", 200))
	w.AddTransaction(expense("Food", 300))

	got := w.SumByCategory(Expense)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Name != "Food" || got[0].Amount.Cents != 400 {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1].Name != "Transport" || got[1].Amount.Cents != 200 {
		t.Fatalf("unexpected second entry %+v", got[1])
	}
	if in := w.SumByCategory(Income); len(in) != 0 {
		t.Fatalf("expected no income categories, got %v", in)
	}
}
