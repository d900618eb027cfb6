// Package settings persists the den settings document.
//
// The document is a small JSON object stored tab-indented at the path
// derived by [github.com/thoreinstein/den/internal/paths]. A [Store]
// owns a single in-memory copy of the last known document to avoid
// redundant disk access; reads can bypass it explicitly.
//
// # Semantics
//
//   - A missing file is absence, not an error.
//   - Malformed JSON is fatal and reported as a [ParseError] naming the
//     offending path. Nothing is recovered or renamed.
//   - Writes replace the file wholesale and the cache with a defensive
//     copy of the written document.
//   - Merge overwrites top-level fields only; it never deep-merges.
//   - Unknown top-level fields are preserved verbatim.
//
// The store performs no locking, across goroutines or processes, and no
// operation is cancellable. It is built for single-shot provisioning at
// process startup.
package settings
