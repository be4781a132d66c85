// Package localstore keeps the editor records as JSON files on a billy filesystem,
// optionally recording every write in a local git journal.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	billyutil "github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/db"
)

const recordExt = ".json"

// Options configures a Store
type Options struct {
	// VersionHistory commits every write to a git repository in the storage directory
	VersionHistory bool

	// Author signs journal commits
	Author Author
}

// Store is a db.KV backed by one file per key
type Store struct {
	fs      billy.Filesystem
	journal *Journal
	logger  *zap.Logger
}

// Open creates a store rooted at dir on the local disk
func Open(dir string, logger *zap.Logger, opts Options) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return New(osfs.New(dir), logger, opts)
}

// New creates a store on an arbitrary billy filesystem
func New(fs billy.Filesystem, logger *zap.Logger, opts Options) (*Store, error) {
	store := &Store{
		fs:     fs,
		logger: logger,
	}

	if opts.VersionHistory {
		journal, err := OpenJournal(fs, opts.Author)
		if err != nil {
			return nil, fmt.Errorf("failed to open version journal: %w", err)
		}
		store.journal = journal
	}

	return store, nil
}

// Journal returns the version journal, or nil when version history is disabled
func (s *Store) Journal() *Journal {
	return s.journal
}

// Get reads the record stored under key, returning db.ErrNotFound when it was never written
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := recordPath(key)
	if err != nil {
		return nil, err
	}

	data, err := billyutil.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return data, nil
}

// Put replaces the record stored under key.
// The value is written to a temporary file first and renamed into place.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := recordPath(key)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := billyutil.WriteFile(s.fs, tmpPath, value, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	s.logger.Debug("Wrote record file", zap.String("path", path), zap.Int("bytes", len(value)))

	if s.journal != nil {
		committed, err := s.journal.Commit(path, fmt.Sprintf("Update %s", key))
		if err != nil {
			return fmt.Errorf("failed to record %s in journal: %w", key, err)
		}
		if committed {
			s.logger.Debug("Committed record to journal", zap.String("key", key))
		}
	}

	return nil
}

func recordPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid record key %q", key)
	}
	return key + recordExt, nil
}
