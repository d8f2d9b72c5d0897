package main

import (
	"log/slog"

	"github.com/casper7/wordle-reactions/internal/config"
	"github.com/casper7/wordle-reactions/pkg/reactions"
	"github.com/casper7/wordle-reactions/pkg/reactions/pattern"
)

// buildMatcher builds a Matcher for the configured channels. Rules from the
// config's pattern files, then from --patterns, are appended after the
// built-in catalogue.
func buildMatcher(cfg *config.Config, patternFiles []string, logger *slog.Logger) (*reactions.Matcher, error) {
	files := make([]string, 0, len(cfg.PatternFiles)+len(patternFiles))
	files = append(files, cfg.PatternFiles...)
	files = append(files, patternFiles...)

	// Errors from the pattern package are already sanitized (no path)
	extra, err := pattern.RulesFromFiles(files)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		logger.Debug("loaded extra rules", "files", len(files), "rules", len(extra))
	}

	return reactions.NewMatcher(
		reactions.NewChannelSet(cfg.WordleChannels...),
		reactions.WithRules(extra...),
		reactions.WithLogger(logger),
	), nil
}
