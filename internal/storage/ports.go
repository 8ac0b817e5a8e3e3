// Package storage provides durable round-trip persistence for the full user
// set, with pluggable backends selected by configuration.
package storage

import (
	"context"
	"errors"

	"finbook/internal/core"
)

// ErrNoData is returned by Load when no prior data exists. It is the
// explicit "empty start" signal, distinct from a corrupt store.
var ErrNoData = errors.New("no stored data")

// UserStore round-trips the ordered user sequence, including nested wallets,
// transactions and budgets.
//
// Load never partially populates: a corrupt store yields an error and the
// caller falls back to an empty starting state. Save overwrites the prior
// content; a failed save must leave any previously stored data intact.
type UserStore interface {
	Load(ctx context.Context) ([]core.User, error)
	Save(ctx context.Context, users []core.User) error
	Close() error
}
