package tokenstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/consolesession/tokenstore"

// FileStore keeps the token pair in a JSON document on disk. The document is
// a flat key/value object so that other console state can share the file; the
// pair lives under Key.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing file
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the stored pair. A missing or unreadable document reads as
// no pair stored.
func (f *FileStore) Get(ctx context.Context) (*sessioninfo.TokenPair, error) {
	_, span := otel.Tracer(name).Start(ctx, "FileStore.Get()")
	defer span.End()

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		logger.FromCtx(ctx).Error(err)

		return nil, nil
	}

	raw, ok := doc[Key]
	if !ok {
		return nil, nil
	}

	var tokens *sessioninfo.TokenPair
	if err := json.Unmarshal(raw, &tokens); err != nil {
		logger.FromCtx(ctx).Error(errors.Wrap(err, "json.Unmarshal()"))

		return nil, nil
	}

	return tokens, nil
}

// Set replaces the stored pair.
func (f *FileStore) Set(ctx context.Context, tokens sessioninfo.TokenPair) error {
	_, span := otel.Tracer(name).Start(ctx, "FileStore.Set()")
	defer span.End()

	raw, err := json.Marshal(tokens)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		// a corrupt document is replaced rather than preventing login
		logger.FromCtx(ctx).Error(err)
		doc = make(map[string]json.RawMessage)
	}
	doc[Key] = raw

	if err := f.write(doc); err != nil {
		return errors.Wrap(err, "FileStore.write()")
	}

	return nil
}

// SetAccess replaces the access token of the stored pair. An unreadable
// document counts as no pair stored.
func (f *FileStore) SetAccess(ctx context.Context, access string) error {
	_, span := otel.Tracer(name).Start(ctx, "FileStore.SetAccess()")
	defer span.End()

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		logger.FromCtx(ctx).Error(err)

		return ErrNotStored
	}

	var tokens *sessioninfo.TokenPair
	if raw, ok := doc[Key]; ok {
		if err := json.Unmarshal(raw, &tokens); err != nil {
			logger.FromCtx(ctx).Error(errors.Wrap(err, "json.Unmarshal()"))
		}
	}
	if tokens == nil {
		return ErrNotStored
	}
	tokens.Access = access

	raw, err := json.Marshal(tokens)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}
	doc[Key] = raw

	if err := f.write(doc); err != nil {
		return errors.Wrap(err, "FileStore.write()")
	}

	return nil
}

// Clear removes the stored pair, leaving any other keys in the document.
func (f *FileStore) Clear(ctx context.Context) error {
	_, span := otel.Tracer(name).Start(ctx, "FileStore.Clear()")
	defer span.End()

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		logger.FromCtx(ctx).Error(err)

		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrap(err, "os.Remove()")
		}

		return nil
	}

	if _, ok := doc[Key]; !ok {
		return nil
	}
	delete(doc, Key)

	if err := f.write(doc); err != nil {
		return errors.Wrap(err, "FileStore.write()")
	}

	return nil
}

func (f *FileStore) read() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}

		return nil, errors.Wrap(err, "os.ReadFile()")
	}

	if len(b) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrapf(err, "json.Unmarshal(): %s", f.path)
	}

	return doc, nil
}

// write replaces the document atomically so a crash never leaves a torn file.
func (f *FileStore) write(doc map[string]json.RawMessage) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "os.MkdirAll()")
	}

	tmp, err := os.CreateTemp(dir, ".tokens-*")
	if err != nil {
		return errors.Wrap(err, "os.CreateTemp()")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "os.File.Write()")
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "os.File.Chmod()")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "os.File.Close()")
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return errors.Wrap(err, "os.Rename()")
	}

	return nil
}
