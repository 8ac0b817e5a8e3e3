package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

type (
	// Kind distinguishes the two transaction directions. There are exactly
	// two cases; no wider hierarchy exists.
	Kind string

	// Transaction is one immutable money movement. Fields are set once at
	// creation and never changed afterwards.
	Transaction struct {
		ID          string    `json:"id"`
		Kind        Kind      `json:"kind"`
		Category    string    `json:"category"`
		Amount      Money     `json:"amount"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
		Owner       string    `json:"owner"`
	}

	// Budget is a per-category spending limit. (Owner, Category) is the
	// natural key; setting a budget for an existing category replaces it.
	Budget struct {
		Category string `json:"category"`
		Limit    Money  `json:"limit"`
		Owner    string `json:"owner"`
	}

	// User owns exactly one Wallet, created empty together with the user.
	User struct {
		Username   string `json:"username"`
		Credential string `json:"credential"`
		Wallet     Wallet `json:"wallet"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidKind   = errors.New("invalid transaction kind")
	ErrNoSession     = errors.New("no active session")
)

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidKind
	}
}

// NewTransaction builds a transaction with a fresh ID and timestamp. The
// category is stored trimmed; validation beyond trimming is the caller's job.
func NewTransaction(kind Kind, category string, amount Money, description, owner string) Transaction {
	return Transaction{
		ID:          uuid.New().String(),
		Kind:        kind,
		Category:    strings.TrimSpace(category),
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().Truncate(time.Second),
		Owner:       owner,
	}
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return t.Amount.Validate()
}

// NewBudget builds a budget with a trimmed category.
func NewBudget(category string, limit Money, owner string) Budget {
	return Budget{
		Category: strings.TrimSpace(category),
		Limit:    limit,
		Owner:    owner,
	}
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	return b.Limit.Validate()
}

// NewUser creates a user with an empty wallet owned by it.
func NewUser(username, credential string) User {
	return User{
		Username:   username,
		Credential: credential,
		Wallet:     Wallet{Owner: username},
	}
}
