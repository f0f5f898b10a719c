package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// errNotRetryable signals repeater to stop retrying
var errNotRetryable = errors.New("not retryable")

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// retryOnLock runs fn, retrying with backoff only while it fails with lock errors.
// Returns the last error of fn, or the repeater error if fn never failed (e.g. canceled context).
func retryOnLock(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var opErr error
	err := retrier.Do(ctx, func() error {
		opErr = fn()
		if opErr != nil && !isLockError(opErr) {
			return errNotRetryable
		}
		return opErr
	}, errNotRetryable)

	if opErr != nil {
		return opErr
	}
	return err
}

// utc normalizes stored timestamps so text ordering in SQLite matches time ordering
func utc(t time.Time) time.Time {
	return t.UTC()
}
