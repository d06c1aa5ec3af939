package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// dummyHash keeps unknown-user lookups on the same bcrypt cost path as known ones.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Store validates username/password pairs against a JSON file mapping
// usernames to bcrypt password hashes.
//
// By default the file is read and parsed on every Validate call, so edits to
// the file take effect immediately and read or parse failures surface to the
// caller of Validate. After Watch is started the parsed store is served from
// an in-memory cache kept fresh by a file watcher.
type Store struct {
	path string
	log  *slog.Logger

	mu       sync.RWMutex
	cache    map[string]string
	watching bool
}

// Option configures Store creation.
type Option func(*Store)

// WithLogger sets a custom logger for the store.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a store backed by the JSON file at path.
// The file must exist and be a regular file; inaccessible paths fail here so
// misconfiguration is caught at setup time rather than on the first login.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, ErrMissingPath
	}

	s := &Store{
		path: path,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("failed to stat user store: %w", err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrStoreNotFound, path)
	}

	return s, nil
}

// Validate reports whether the username/password pair matches the store.
// Unknown users and wrong passwords return (false, nil); only I/O, parse, or
// context failures return an error.
func (s *Store) Validate(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	users, err := s.users()
	if err != nil {
		return false, err
	}

	hash, ok := users[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Malformed hash material in the store file.
		return false, errors.Join(ErrMalformedStore, err)
	}
}

// Reload re-reads the store file into the in-memory cache.
func (s *Store) Reload() error {
	users, err := s.load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = users
	s.mu.Unlock()

	return nil
}

// users returns the current user map: the cache while watching, otherwise a
// fresh read of the file.
func (s *Store) users() (map[string]string, error) {
	s.mu.RLock()
	if s.watching {
		users := s.cache
		s.mu.RUnlock()
		return users, nil
	}
	s.mu.RUnlock()

	return s.load()
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user store: %w", err)
	}

	users := make(map[string]string)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, errors.Join(ErrMalformedStore, err)
	}

	return users, nil
}

// Watch switches the store to cached mode and keeps the cache fresh by
// reloading whenever the file changes on disk. It returns after the watcher
// is installed; watching stops when ctx is cancelled.
//
// The parent directory is watched rather than the file itself so atomic
// replace-by-rename updates are observed.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create store watcher: %w", err)
	}

	if err := s.Reload(); err != nil {
		_ = watcher.Close()
		return err
	}

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch user store directory: %w", err)
	}

	s.mu.Lock()
	s.watching = true
	s.mu.Unlock()

	go s.watchLoop(ctx, watcher)

	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		_ = watcher.Close()
		s.mu.Lock()
		s.watching = false
		s.mu.Unlock()
	}()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Reload(); err != nil {
				// Keep serving the previous snapshot until the file is readable again.
				s.log.ErrorContext(ctx, "failed to reload user store",
					slog.String("path", s.path),
					logger.Error(err),
				)
				continue
			}
			s.log.InfoContext(ctx, "user store reloaded", slog.String("path", s.path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.ErrorContext(ctx, "user store watcher error", logger.Error(err))
		}
	}
}
