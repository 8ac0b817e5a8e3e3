package core

// Wallet holds one user's financial facts: transactions in insertion order
// (insertion order is chronological) and budgets keyed by category. All
// aggregates are derived on demand; nothing is cached.
type Wallet struct {
	Owner        string        `json:"owner"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
}

// AddTransaction appends t. Validation is the service layer's job.
func (w *Wallet) AddTransaction(t Transaction) {
	w.Transactions = append(w.Transactions, t)
}

// SetBudget replaces any existing budget for the same category, then inserts
// b. Replace, not merge: the prior limit is forgotten.
func (w *Wallet) SetBudget(b Budget) {
	kept := w.Budgets[:0]
	for _, existing := range w.Budgets {
		if existing.Category != b.Category {
			kept = append(kept, existing)
		}
	}
	w.Budgets = append(kept, b)
}

// Balance is total income minus total expenses. May be negative.
func (w *Wallet) Balance() Money {
	var income, expense int64
	for _, t := range w.Transactions {
		switch t.Kind {
		case Income:
			income += t.Amount.Cents
		case Expense:
			expense += t.Amount.Cents
		}
	}
	return Money{Cents: income - expense}
}

func (w *Wallet) TotalIncome() Money {
	return w.sumByKind(Income)
}

func (w *Wallet) TotalExpenses() Money {
	return w.sumByKind(Expense)
}

func (w *Wallet) sumByKind(kind Kind) Money {
	var sum int64
	for _, t := range w.Transactions {
		if t.Kind == kind {
			sum += t.Amount.Cents
		}
	}
	return Money{Cents: sum}
}

// ExpensesForCategory sums expense amounts whose category matches exactly
// (case-sensitive, post-trim equality).
func (w *Wallet) ExpensesForCategory(category string) Money {
	var sum int64
	for _, t := range w.Transactions {
		if t.Kind == Expense && t.Category == category {
			sum += t.Amount.Cents
		}
	}
	return Money{Cents: sum}
}

// BudgetForCategory returns the budget for category if one is set. Absence
// is not an error.
func (w *Wallet) BudgetForCategory(category string) (Budget, bool) {
	for _, b := range w.Budgets {
		if b.Category == category {
			return b, true
		}
	}
	return Budget{}, false
}
