package tokenstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
)

// MemoryStore keeps the JSON of the last pair in process memory.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored pair.
func (m *MemoryStore) Get(_ context.Context) (*sessioninfo.TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.raw == nil {
		return nil, nil
	}

	tokens := &sessioninfo.TokenPair{}
	if err := json.Unmarshal(m.raw, tokens); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal()")
	}

	return tokens, nil
}

// Set replaces the stored pair.
func (m *MemoryStore) Set(_ context.Context, tokens sessioninfo.TokenPair) error {
	raw, err := json.Marshal(tokens)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}

	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()

	return nil
}

// SetAccess replaces the access token of the stored pair.
func (m *MemoryStore) SetAccess(_ context.Context, access string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.raw == nil {
		return ErrNotStored
	}

	var tokens sessioninfo.TokenPair
	if err := json.Unmarshal(m.raw, &tokens); err != nil {
		return errors.Wrap(err, "json.Unmarshal()")
	}
	tokens.Access = access

	raw, err := json.Marshal(tokens)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}
	m.raw = raw

	return nil
}

// Clear removes the stored pair.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.raw = nil
	m.mu.Unlock()

	return nil
}
