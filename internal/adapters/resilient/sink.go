// Package resilient wraps secondary adapters with retry policies.
package resilient

import (
	"context"
	"errors"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/example/dormant/internal/core/roster"
	"github.com/example/dormant/internal/ctxutil"
	"github.com/example/dormant/internal/ports/secondary"
)

// RetryConfig controls how transient sink errors are retried.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryConfig returns the retry settings used by the CLI.
func DefaultRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   time.Second,
	}
}

// RetryingSink retries deletes that fail because the database is busy or locked.
// Any other error is returned on the first attempt.
type RetryingSink struct {
	inner    secondary.ContactSink
	executor failsafe.Executor[any]
	logger   *logrus.Logger
}

// NewRetryingSink wraps inner with a retry policy.
func NewRetryingSink(inner secondary.ContactSink, cfg RetryConfig, logger *logrus.Logger) *RetryingSink {
	if cfg.MaxDelay <= cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay * 2
	}

	policy := retrypolicy.NewBuilder[any]().
		WithBackoff(cfg.BaseDelay, cfg.MaxDelay).
		WithMaxRetries(cfg.MaxRetries).
		WithJitterFactor(0.1).
		HandleIf(func(_ any, err error) bool {
			return IsTransient(err)
		}).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[any]) {
			logger.WithFields(logrus.Fields{
				"attempt": e.Attempts(),
				"error":   e.LastError(),
			}).Debug("retrying contact delete")
		}).
		Build()

	return &RetryingSink{
		inner:    inner,
		executor: failsafe.With[any](policy),
		logger:   logger,
	}
}

// Delete forwards to the wrapped sink under the retry policy.
func (s *RetryingSink) Delete(ctx context.Context, contact roster.Contact) error {
	err := s.executor.WithContext(ctx).Run(func() error {
		return s.inner.Delete(ctx, contact)
	})
	if IsTransient(err) {
		s.logger.WithFields(logrus.Fields{
			"batch_id":   ctxutil.BatchIDFromContext(ctx),
			"lookup_key": contact.LookupKey,
		}).WithError(err).Warn("giving up on contact delete, database stayed busy")
	}
	return err
}

// IsTransient reports whether err is a SQLite busy or locked error.
func IsTransient(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// Ensure RetryingSink implements the interface.
var _ secondary.ContactSink = (*RetryingSink)(nil)
