package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finbook/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the user set in a SQLite database. Save replaces the
// full set inside one transaction; Load reassembles wallets in stored order.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]core.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, credential FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []core.User
	var ids []int64
	for rows.Next() {
		var id int64
		var u core.User
		if err := rows.Scan(&id, &u.Username, &u.Credential); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Wallet.Owner = u.Username
		users = append(users, u)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoData
	}

	for i := range users {
		if err := s.loadWallet(ctx, ids[i], &users[i].Wallet); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "Loaded users from SQLite store", "users", len(users))
	return users, nil
}

func (s *SQLiteStore) loadWallet(ctx context.Context, userID int64, w *core.Wallet) error {
	txRows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, category, amount_cents, description, created_at
		 FROM transactions WHERE user_id = ? ORDER BY position`, userID)
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}
	defer txRows.Close()

	for txRows.Next() {
		var t core.Transaction
		var kind, createdAt string
		if err := txRows.Scan(&t.ID, &kind, &t.Category, &t.Amount.Cents, &t.Description, &createdAt); err != nil {
			return fmt.Errorf("scan transaction: %w", err)
		}
		t.Kind = core.Kind(kind)
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return fmt.Errorf("parse transaction timestamp %q: %w", createdAt, err)
		}
		t.Owner = w.Owner
		w.Transactions = append(w.Transactions, t)
	}
	if err := txRows.Err(); err != nil {
		return fmt.Errorf("iterate transactions: %w", err)
	}

	bRows, err := s.db.QueryContext(ctx,
		`SELECT category, limit_cents FROM budgets WHERE user_id = ? ORDER BY position`, userID)
	if err != nil {
		return fmt.Errorf("query budgets: %w", err)
	}
	defer bRows.Close()

	for bRows.Next() {
		var b core.Budget
		if err := bRows.Scan(&b.Category, &b.Limit.Cents); err != nil {
			return fmt.Errorf("scan budget: %w", err)
		}
		b.Owner = w.Owner
		w.Budgets = append(w.Budgets, b)
	}
	if err := bRows.Err(); err != nil {
		return fmt.Errorf("iterate budgets: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, users []core.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"transactions", "budgets", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for pos, u := range users {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, credential, position) VALUES (?, ?, ?)`,
			u.Username, u.Credential, pos)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.Username, err)
		}
		userID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("user id for %s: %w", u.Username, err)
		}

		for i, t := range u.Wallet.Transactions {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO transactions (id, user_id, kind, category, amount_cents, description, created_at, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, userID, string(t.Kind), t.Category, t.Amount.Cents,
				t.Description, t.CreatedAt.Format(time.RFC3339), i)
			if err != nil {
				return fmt.Errorf("insert transaction %s: %w", t.ID, err)
			}
		}
		for i, b := range u.Wallet.Budgets {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO budgets (user_id, category, limit_cents, position)
				 VALUES (?, ?, ?, ?)`,
				userID, b.Category, b.Limit.Cents, i)
			if err != nil {
				return fmt.Errorf("insert budget %s/%s: %w", u.Username, b.Category, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "Saved users to SQLite store", "users", len(users))
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
