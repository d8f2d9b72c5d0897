package feed

import (
	"fmt"
	"io"
	"log/slog"
)

// Option configures a Follower using the functional options pattern.
type Option func(*followConfig)

type followConfig struct {
	fromStart    bool
	poll         bool
	maxLineBytes int
	logger       *slog.Logger
}

// DefaultMaxLineBytes is the default limit for a single record line.
const DefaultMaxLineBytes = 64 * 1024

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func defaultFollowConfig() *followConfig {
	return &followConfig{
		maxLineBytes: DefaultMaxLineBytes,
		logger:       discardLogger,
	}
}

func applyOptions(opts []Option) *followConfig {
	cfg := defaultFollowConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (c *followConfig) validate() error {
	if c.maxLineBytes <= 0 {
		return fmt.Errorf("max line bytes must be positive, got %d", c.maxLineBytes)
	}
	return nil
}

// WithFromStart replays records already in the file before following new
// ones. By default only records appended after Follow starts are read.
func WithFromStart(fromStart bool) Option {
	return func(c *followConfig) {
		c.fromStart = fromStart
	}
}

// WithPoll makes the tailer poll for changes instead of using file system
// notifications. Useful on network file systems.
func WithPoll(poll bool) Option {
	return func(c *followConfig) {
		c.poll = poll
	}
}

// WithMaxLineBytes sets the longest record line accepted. Longer lines are
// reported as a RecordError and skipped.
func WithMaxLineBytes(n int) Option {
	return func(c *followConfig) {
		c.maxLineBytes = n
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *followConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
