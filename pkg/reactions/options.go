package reactions

import (
	"io"
	"log/slog"
)

// MatcherOption configures a Matcher using the functional options pattern.
type MatcherOption func(*matcherConfig)

type matcherConfig struct {
	catalogue []Rule
	extra     []Rule
	logger    *slog.Logger
}

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func defaultMatcherConfig() *matcherConfig {
	return &matcherConfig{
		catalogue: defaultCatalogue,
		logger:    discardLogger,
	}
}

func applyMatcherOptions(opts []MatcherOption) *matcherConfig {
	cfg := defaultMatcherConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger sets a logger for debug output of rule matches.
// A nil logger keeps the default discard logger.
func WithLogger(logger *slog.Logger) MatcherOption {
	return func(c *matcherConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRules appends rules after the catalogue. Rules are evaluated in the
// order given, after every catalogue rule.
func WithRules(rules ...Rule) MatcherOption {
	return func(c *matcherConfig) {
		c.extra = append(c.extra, rules...)
	}
}

// WithCatalogue replaces the built-in catalogue.
// Passing an empty slice leaves only rules added with WithRules.
func WithCatalogue(rules []Rule) MatcherOption {
	return func(c *matcherConfig) {
		c.catalogue = rules
	}
}
