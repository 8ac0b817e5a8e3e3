package core

const (
	BudgetExceeded    BudgetAlertLevel = "exceeded"
	BudgetApproaching BudgetAlertLevel = "approaching"

	BalanceCritical BalanceAlertLevel = "critical"
	BalanceLow      BalanceAlertLevel = "low"
)

// LowBalanceCents is the warning threshold for the overall balance: below
// 1000 currency units the balance is considered low.
const LowBalanceCents int64 = 100_000

type (
	BudgetAlertLevel  string
	BalanceAlertLevel string

	// BudgetAlert reports one category's spending against its budget.
	// Overage is set for exceeded alerts, Remaining for approaching ones.
	BudgetAlert struct {
		Level     BudgetAlertLevel `json:"level"`
		Category  string           `json:"category"`
		Spent     Money            `json:"spent"`
		Limit     Money            `json:"limit"`
		Overage   Money            `json:"overage"`
		Remaining Money            `json:"remaining"`
	}

	// BalanceAlert reports an overall-balance condition.
	BalanceAlert struct {
		Level   BalanceAlertLevel `json:"level"`
		Balance Money             `json:"balance"`
	}
)

// CheckBudget evaluates spent against a budget's limit. The approaching
// threshold is 80% of the limit, computed in integer cents (5*spent >=
// 4*limit) so no float comparison is involved.
func CheckBudget(b Budget, spent Money) (BudgetAlert, bool) {
	switch {
	case spent.Cents > b.Limit.Cents:
		return BudgetAlert{
			Level:    BudgetExceeded,
			Category: b.Category,
			Spent:    spent,
			Limit:    b.Limit,
			Overage:  spent.Sub(b.Limit),
		}, true
	case 5*spent.Cents >= 4*b.Limit.Cents:
		return BudgetAlert{
			Level:     BudgetApproaching,
			Category:  b.Category,
			Spent:     spent,
			Limit:     b.Limit,
			Remaining: b.Limit.Sub(spent),
		}, true
	default:
		return BudgetAlert{}, false
	}
}

// CheckBalance evaluates the overall balance: negative is critical, below
// LowBalanceCents is a warning, anything else raises no alert.
func CheckBalance(balance Money) (BalanceAlert, bool) {
	switch {
	case balance.IsNegative():
		return BalanceAlert{Level: BalanceCritical, Balance: balance}, true
	case balance.Cents < LowBalanceCents:
		return BalanceAlert{Level: BalanceLow, Balance: balance}, true
	default:
		return BalanceAlert{}, false
	}
}
