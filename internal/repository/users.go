// Package repository holds the in-memory user set for a running process.
// It is constructed explicitly and injected; there is no package-level
// instance.
package repository

import (
	"finbook/internal/core"
)

// Users is an ordered collection of users keyed by username. Order is
// insertion order so that saving the set reproduces the stored sequence.
type Users struct {
	byName map[string]*core.User
	order  []string
}

func NewUsers() *Users {
	return &Users{byName: make(map[string]*core.User)}
}

// Add inserts or replaces a user. A replaced user keeps its original
// position in the sequence.
func (r *Users) Add(u core.User) {
	if _, ok := r.byName[u.Username]; !ok {
		r.order = append(r.order, u.Username)
	}
	stored := u
	r.byName[u.Username] = &stored
}

// Find returns the user with the given username, if known. The returned
// pointer aliases the stored user, so wallet mutations are visible to All.
func (r *Users) Find(username string) (*core.User, bool) {
	u, ok := r.byName[username]
	return u, ok
}

// All returns the users in insertion order.
func (r *Users) All() []core.User {
	out := make([]core.User, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.byName[name])
	}
	return out
}

func (r *Users) Len() int {
	return len(r.order)
}
