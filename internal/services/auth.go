package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	applog "finbook/internal/log"
	"finbook/internal/repository"
	"finbook/internal/storage"
)

// ErrInvalidCredentials is returned by Login on an unknown user or a
// credential mismatch.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService owns the session lifecycle: it verifies credentials, hands
// out sessions, and flushes every known user's wallet on logout
// (flush-before-forget). The user repository and store are injected.
type AuthService struct {
	users *repository.Users
	store storage.UserStore
}

func NewAuthService(users *repository.Users, store storage.UserStore) *AuthService {
	return &AuthService{
		users: users,
		store: store,
	}
}

// Hydrate fills the repository from the store. "No prior data" and corrupt
// stores both degrade to the current in-memory state with a log line; they
// never abort startup.
func (a *AuthService) Hydrate(ctx context.Context) {
	loaded, err := a.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoData) {
			slog.InfoContext(ctx, "No stored users, starting fresh")
		} else {
			slog.WarnContext(ctx, "Stored users unreadable, starting fresh", applog.FieldError, err)
		}
		return
	}
	for _, u := range loaded {
		a.users.Add(u)
	}
}

// Login verifies the credential by equality and returns a live session.
// On mismatch the returned session stays logged out alongside the error.
func (a *AuthService) Login(ctx context.Context, username, secret string) (*Session, error) {
	user, ok := a.users.Find(username)
	if !ok || user.Credential != secret {
		return &Session{}, ErrInvalidCredentials
	}

	slog.InfoContext(ctx, "User logged in", applog.FieldUsername, username)
	return &Session{user: user}, nil
}

// Logout persists all known users, then drops the current-user reference.
// A failed save is reported but the session still ends; in-memory state is
// untouched.
func (a *AuthService) Logout(ctx context.Context, sess *Session) error {
	var err error
	if sess.Active() {
		err = a.SaveAll(ctx)
		slog.InfoContext(ctx, "User logged out", applog.FieldUsername, sess.Username())
	}
	sess.clear()
	return err
}

// SaveAll writes the full user set through the store.
func (a *AuthService) SaveAll(ctx context.Context) error {
	if err := a.store.Save(ctx, a.users.All()); err != nil {
		slog.ErrorContext(ctx, "Failed to save users", applog.FieldError, err)
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
