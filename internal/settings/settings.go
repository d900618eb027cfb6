package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/den/internal/errors"
	"github.com/thoreinstein/den/internal/logging"
	"github.com/thoreinstein/den/internal/paths"
	"github.com/thoreinstein/den/pkg/fileutil"
)

// Document is the settings document: arbitrary top-level fields plus
// the well-known encryption key. Unknown fields round-trip verbatim
// across load, merge, and write.
type Document map[string]any

// File permissions for the settings document and its folder. The
// document carries the credential encryption key, so it is private to
// the user.
const (
	filePerm = 0o600
	dirPerm  = 0o755
)

// ParseError reports a settings file whose contents are not valid JSON.
// It always names the offending path; the file is left untouched and
// nothing is retried.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing settings file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store loads, merges, and writes the settings document and owns the
// process-local cache of it.
//
// The cache is a single document with last-writer-wins semantics and no
// internal locking: intended usage is single-shot provisioning at
// startup, so at most one logical mutation is assumed in flight.
// Concurrent use from multiple goroutines is not coordinated.
type Store struct {
	resolver *paths.Resolver
	logger   *slog.Logger

	// cache holds the most recently written or disk-read document.
	// nil means cold.
	cache Document
}

// NewStore creates a Store over the given resolver.
// A nil logger discards log output.
func NewStore(resolver *paths.Resolver, logger *slog.Logger) *Store {
	if resolver == nil {
		resolver = paths.NewResolver()
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Store{
		resolver: resolver,
		logger:   logger,
	}
}

// Load returns the current settings document.
//
// When the cache is warm and ignoreCache is false, the cached document
// is returned with no disk access. Otherwise the file at path (or the
// resolver default when path is empty) is read and parsed, and the
// cache is replaced with the result.
//
// A missing file is not an error: Load returns (nil, false, nil). Any
// failure of the existence probe is read uniformly as absence.
// Malformed JSON returns a *ParseError naming the path.
func (s *Store) Load(path string, ignoreCache bool) (Document, bool, error) {
	if s.cache != nil && !ignoreCache {
		return s.cache, true, nil
	}

	if path == "" {
		path = s.resolver.SettingsFile()
	}

	if _, err := os.Stat(path); err != nil {
		s.logger.Debug("no settings file", "path", path)
		return nil, false, nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading settings file %s", path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, &ParseError{Path: path, Err: err}
	}

	s.cache = doc
	s.logger.Debug("settings loaded", "path", path, "fields", len(doc))
	return doc, true, nil
}

// Write serializes doc as tab-indented JSON and replaces the file at
// path (or the resolver default when path is empty).
//
// When the parent folder is missing, exactly one directory level is
// created; a missing grandparent makes the write fail. The write is a
// plain overwrite with no fsync or rename-swap, so a crash mid-write
// can leave a truncated file.
//
// The cache is replaced with a defensive copy of doc, so later caller
// mutations of doc do not leak into it. Returns the written document.
func (s *Store) Write(doc Document, path string) (Document, error) {
	if path == "" {
		path = s.resolver.SettingsFile()
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		// One missing level only: Mkdir, not MkdirAll.
		if err := os.Mkdir(dir, dirPerm); err != nil {
			return nil, errors.Wrapf(err, "creating settings directory %s", dir)
		}
	}

	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling settings")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return nil, errors.Wrapf(err, "writing settings file %s", path)
	}

	// Cache a re-parse of the written bytes rather than doc itself, so
	// the caller keeping and mutating doc cannot corrupt the cache.
	var snapshot Document
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(err, "copying settings for cache")
	}
	s.cache = snapshot

	s.logger.Debug("settings written", "path", path, "fields", len(doc))
	return doc, nil
}

// Merge shallow-overwrites the top-level fields of partial onto the
// loaded document (or an empty one when no file exists yet) and writes
// the result. Nested values are replaced wholesale, never deep-merged.
func (s *Store) Merge(partial Document, path string) (Document, error) {
	current, _, err := s.Load(path, false)
	if err != nil {
		return nil, err
	}

	merged := make(Document, len(current)+len(partial))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}

	return s.Write(merged, path)
}
