package version

import "errors"

var (
	// ErrValidation marks a missing or malformed required field. Caller
	// error, not worth retrying.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the versionId does not name a version of the given
	// document. A versionId is always checked against the requesting
	// document, never looked up globally.
	ErrNotFound = errors.New("version not found")

	// ErrStorage means the backing store was unavailable or a write failed.
	// Writes are never partially applied, so callers may retry with backoff.
	ErrStorage = errors.New("storage failure")
)
