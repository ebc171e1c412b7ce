// Package tokenstore persists the access/refresh token pair of the console.
// Stores hold the last pair written under a single constant key and carry no
// business logic: no encryption and no expiry tracking.
package tokenstore

import (
	"context"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
)

// Key is the storage key under which the token pair is kept.
const Key = "tokens"

// ErrNotStored is returned by SetAccess when there is no pair to update.
var ErrNotStored = errors.New("no token pair stored")

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// Store defines the interface for token pair persistence.
type Store interface {
	// Get returns the stored pair, or nil when nothing is stored.
	Get(ctx context.Context) (*sessioninfo.TokenPair, error)
	// Set replaces the stored pair.
	Set(ctx context.Context, tokens sessioninfo.TokenPair) error
	// SetAccess replaces the access token of the stored pair in one step,
	// returning ErrNotStored when nothing is stored.
	SetAccess(ctx context.Context, access string) error
	// Clear removes the stored pair.
	Clear(ctx context.Context) error
}

// AccessToken returns the stored access token, or "" if there is none.
func AccessToken(ctx context.Context, s Store) string {
	tokens, err := s.Get(ctx)
	if err != nil || tokens == nil {
		return ""
	}

	return tokens.Access
}

// RefreshToken returns the stored refresh token, or "" if there is none.
func RefreshToken(ctx context.Context, s Store) string {
	tokens, err := s.Get(ctx)
	if err != nil || tokens == nil {
		return ""
	}

	return tokens.Refresh
}
