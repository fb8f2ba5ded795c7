package notebook

import (
	"log/slog"
	"time"

	"github.com/aretw0/memo/pkg/core"
)

// options holds the configuration of a Service.
type options struct {
	logger   *slog.Logger
	now      func() time.Time
	newID    core.IDGenerator
	importID func(time.Time) string
}

// Option configures a Service.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:   slog.Default(),
		now:      now,
		newID:    core.NewID,
		importID: core.NewImportID,
	}
}

// now returns the current UTC time at millisecond precision, the resolution
// of the persisted timestamps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator replaces the generator used for notes created by Save.
func WithIDGenerator(gen core.IDGenerator) Option {
	return func(o *options) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// WithImportIDGenerator replaces the generator used for imported notes.
func WithImportIDGenerator(gen func(time.Time) string) Option {
	return func(o *options) {
		if gen != nil {
			o.importID = gen
		}
	}
}
