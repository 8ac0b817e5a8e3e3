// Package services contains the operation layer over the domain model: the
// ledger entry points with their validation and alerting policy, and the
// authentication/session lifecycle around them.
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"finbook/internal/core"
	applog "finbook/internal/log"
)

// AlertPublisher forwards threshold alerts to an external channel. A nil
// publisher disables forwarding; alerts are still computed and logged.
type AlertPublisher interface {
	PublishBudgetAlert(ctx context.Context, owner string, alert core.BudgetAlert) error
	PublishBalanceAlert(ctx context.Context, owner string, alert core.BalanceAlert) error
}

// LedgerService is the only mutation and query entry point over a user's
// wallet. It is stateless: all state lives in the session's wallet, and the
// session is passed into every call.
//
// Mutating calls validate first and fail without partial mutation. Aggregate
// queries without an active session return identity values, never errors.
type LedgerService struct {
	alerts AlertPublisher
}

func NewLedgerService(alerts AlertPublisher) *LedgerService {
	return &LedgerService{alerts: alerts}
}

// RecordIncome validates and appends an income transaction.
func (s *LedgerService) RecordIncome(ctx context.Context, sess *Session, category string, amount core.Money, description string) error {
	_, err := s.record(ctx, sess, core.Income, category, amount, description)
	return err
}

// RecordExpense validates and appends an expense transaction, then runs the
// alert evaluation pass for the affected category and the overall balance.
// Alert evaluation is a side effect of computation and logging only; it
// never mutates the wallet.
func (s *LedgerService) RecordExpense(ctx context.Context, sess *Session, category string, amount core.Money, description string) error {
	t, err := s.record(ctx, sess, core.Expense, category, amount, description)
	if err != nil {
		return err
	}

	wallet := &sess.User().Wallet
	if budget, ok := wallet.BudgetForCategory(t.Category); ok {
		if alert, raised := core.CheckBudget(budget, wallet.ExpensesForCategory(t.Category)); raised {
			slog.WarnContext(ctx, "Budget alert",
				applog.FieldUsername, sess.Username(),
				applog.FieldLevel, alert.Level,
				applog.FieldCategory, alert.Category,
				applog.FieldSpentCents, alert.Spent.Cents,
				applog.FieldLimitCents, alert.Limit.Cents)
			s.publishBudgetAlert(ctx, sess.Username(), alert)
		}
	}
	if alert, raised := core.CheckBalance(wallet.Balance()); raised {
		slog.WarnContext(ctx, "Balance alert",
			applog.FieldUsername, sess.Username(),
			applog.FieldLevel, alert.Level,
			applog.FieldBalanceCents, alert.Balance.Cents)
		s.publishBalanceAlert(ctx, sess.Username(), alert)
	}
	return nil
}

func (s *LedgerService) record(ctx context.Context, sess *Session, kind core.Kind, category string, amount core.Money, description string) (core.Transaction, error) {
	if !sess.Active() {
		return core.Transaction{}, core.ErrNoSession
	}
	if strings.TrimSpace(category) == "" {
		return core.Transaction{}, core.ErrEmptyCategory
	}
	if err := amount.Validate(); err != nil {
		return core.Transaction{}, err
	}

	t := core.NewTransaction(kind, category, amount, description, sess.Username())
	sess.User().Wallet.AddTransaction(t)

	slog.InfoContext(ctx, "Transaction recorded",
		applog.FieldUsername, sess.Username(),
		applog.FieldKind, t.Kind,
		applog.FieldCategory, t.Category,
		applog.FieldAmountCents, t.Amount.Cents)
	return t, nil
}

// SetBudget validates and sets a per-category limit, replacing any prior
// budget for that category.
func (s *LedgerService) SetBudget(ctx context.Context, sess *Session, category string, limit core.Money) error {
	if !sess.Active() {
		return core.ErrNoSession
	}
	if strings.TrimSpace(category) == "" {
		return core.ErrEmptyCategory
	}
	if err := limit.Validate(); err != nil {
		return err
	}

	b := core.NewBudget(category, limit, sess.Username())
	sess.User().Wallet.SetBudget(b)

	slog.InfoContext(ctx, "Budget set",
		applog.FieldUsername, sess.Username(),
		applog.FieldCategory, b.Category,
		applog.FieldLimitCents, b.Limit.Cents)
	return nil
}

// Balance returns the session wallet's balance, or zero without a session.
func (s *LedgerService) Balance(sess *Session) core.Money {
	if !sess.Active() {
		return core.Money{}
	}
	return sess.User().Wallet.Balance()
}

func (s *LedgerService) TotalIncome(sess *Session) core.Money {
	if !sess.Active() {
		return core.Money{}
	}
	return sess.User().Wallet.TotalIncome()
}

func (s *LedgerService) TotalExpenses(sess *Session) core.Money {
	if !sess.Active() {
		return core.Money{}
	}
	return sess.User().Wallet.TotalExpenses()
}

// IncomeByCategory returns income sums per category in first-appearance
// order. Empty without a session.
func (s *LedgerService) IncomeByCategory(sess *Session) []core.CategoryAmount {
	if !sess.Active() {
		return nil
	}
	return sess.User().Wallet.SumByCategory(core.Income)
}

// ExpensesByCategory returns expense sums per category in first-appearance
// order. Empty without a session.
func (s *LedgerService) ExpensesByCategory(sess *Session) []core.CategoryAmount {
	if !sess.Active() {
		return nil
	}
	return sess.User().Wallet.SumByCategory(core.Expense)
}

// ExpensesForCategories sums expenses across the given categories.
func (s *LedgerService) ExpensesForCategories(sess *Session, categories []string) core.Money {
	if !sess.Active() {
		return core.Money{}
	}
	wallet := &sess.User().Wallet
	var total core.Money
	for _, c := range categories {
		total = total.Add(wallet.ExpensesForCategory(c))
	}
	return total
}

// Budgets returns the session wallet's budgets in iteration order.
func (s *LedgerService) Budgets(sess *Session) []core.Budget {
	if !sess.Active() {
		return nil
	}
	return sess.User().Wallet.Budgets
}

// BudgetAlerts recomputes every budget's alert state from scratch. Spending
// is always evaluated against the current limit, so replacing a budget
// re-evaluates all previously recorded expenses against the new limit.
// Order follows budget iteration order.
func (s *LedgerService) BudgetAlerts(sess *Session) []core.BudgetAlert {
	if !sess.Active() {
		return nil
	}
	wallet := &sess.User().Wallet
	var alerts []core.BudgetAlert
	for _, b := range wallet.Budgets {
		if alert, raised := core.CheckBudget(b, wallet.ExpensesForCategory(b.Category)); raised {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}

// BalanceAlert evaluates the overall-balance policy on demand.
func (s *LedgerService) BalanceAlert(sess *Session) (core.BalanceAlert, bool) {
	if !sess.Active() {
		return core.BalanceAlert{}, false
	}
	return core.CheckBalance(sess.User().Wallet.Balance())
}

// Transactions returns every transaction in the session wallet, in
// insertion order. Empty without a session.
func (s *LedgerService) Transactions(sess *Session) []core.Transaction {
	if !sess.Active() {
		return nil
	}
	return sess.User().Wallet.Transactions
}

// TransactionsByPeriod returns the transactions created within [from, to],
// inclusive on both ends, in insertion order.
func (s *LedgerService) TransactionsByPeriod(sess *Session, from, to time.Time) []core.Transaction {
	if !sess.Active() {
		return nil
	}
	var out []core.Transaction
	for _, t := range sess.User().Wallet.Transactions {
		if t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *LedgerService) publishBudgetAlert(ctx context.Context, owner string, alert core.BudgetAlert) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.PublishBudgetAlert(ctx, owner, alert); err != nil {
		// Alert forwarding never fails the recording call.
		slog.ErrorContext(ctx, "Failed to publish budget alert", applog.FieldError, err)
	}
}

func (s *LedgerService) publishBalanceAlert(ctx context.Context, owner string, alert core.BalanceAlert) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.PublishBalanceAlert(ctx, owner, alert); err != nil {
		slog.ErrorContext(ctx, "Failed to publish balance alert", applog.FieldError, err)
	}
}
