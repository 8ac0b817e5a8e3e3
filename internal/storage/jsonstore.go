package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finbook/internal/core"
)

// JSONStore persists the user set as one pretty-printed JSON file. Amounts
// are stored as integer cents and timestamps as RFC 3339, so a load followed
// by a save reproduces a field-equal file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONStore{path: path}, nil
}

func (s *JSONStore) Load(ctx context.Context) ([]core.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}

	var users []core.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	slog.InfoContext(ctx, "Loaded users from JSON store",
		"path", s.path,
		"users", len(users))
	return users, nil
}

// Save writes atomically: marshal to a temp file in the same directory,
// then rename over the target. A failed write never clobbers prior content.
func (s *JSONStore) Save(ctx context.Context, users []core.User) error {
	if users == nil {
		users = []core.User{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	slog.InfoContext(ctx, "Saved users to JSON store",
		"path", s.path,
		"users", len(users))
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
