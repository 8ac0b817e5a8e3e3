package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbook/internal/core"
)

func newSQLiteFixture(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "finbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteFixture(t)

	users := fixtureUsers()
	require.NoError(t, store.Save(ctx, users))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	requireUsersEqual(t, users, got)
}

func TestSQLiteStoreLoadNoData(t *testing.T) {
	store := newSQLiteFixture(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSQLiteStoreSaveReplacesFullSet(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteFixture(t)

	require.NoError(t, store.Save(ctx, fixtureUsers()))

	solo := []core.User{core.NewUser("carol", "pw")}
	require.NoError(t, store.Save(ctx, solo))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].Username)
	assert.Empty(t, got[0].Wallet.Transactions)
	assert.Empty(t, got[0].Wallet.Budgets)
}

func TestSQLiteStorePreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteFixture(t)

	u := core.NewUser("alice", "pw")
	for _, cat := range []string{"C", "A", "B"} {
		u.Wallet.AddTransaction(core.NewTransaction(core.Expense, cat, core.Money{Cents: 100}, "", "alice"))
		u.Wallet.SetBudget(core.NewBudget(cat, core.Money{Cents: 1000}, "alice"))
	}
	require.NoError(t, store.Save(ctx, []core.User{u}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	var txCats, budgetCats []string
	for _, tr := range got[0].Wallet.Transactions {
		txCats = append(txCats, tr.Category)
	}
	for _, b := range got[0].Wallet.Budgets {
		budgetCats = append(budgetCats, b.Category)
	}
	assert.Equal(t, []string{"C", "A", "B"}, txCats, "insertion order preserved")
	assert.Equal(t, []string{"C", "A", "B"}, budgetCats, "budget order preserved")
}
