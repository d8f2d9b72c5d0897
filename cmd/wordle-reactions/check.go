package main

import (
	"errors"
	"fmt"

	"github.com/casper7/wordle-reactions/pkg/reactions"
	"github.com/casper7/wordle-reactions/pkg/reactions/pattern"
	"github.com/spf13/cobra"
)

// errCheckFailed is returned when at least one pattern file is invalid.
// Details are printed per file.
var errCheckFailed = errors.New("pattern check failed")

func newCheckCmd() *cobra.Command {
	var samples []string

	cmd := &cobra.Command{
		Use:   "check <pattern-file>...",
		Short: "Validate pattern files",
		Long: `Validate YAML pattern files and optionally try them on sample messages.

Each file is loaded and compiled. With --sample, every sample message is
evaluated against the built-in catalogue plus the rules of all files, and
the IDs of matching rules are printed.

Examples:
  wordle-reactions check extra-games.yaml
  wordle-reactions check extra-games.yaml --sample $'Connections\nPuzzle #120'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, samples)
		},
	}

	cmd.Flags().StringArrayVar(&samples, "sample", nil, "Sample message to evaluate (repeatable)")

	return cmd
}

func runCheck(cmd *cobra.Command, paths, samples []string) error {
	out := cmd.OutOrStdout()

	var extra []reactions.Rule
	failed := false
	for i, path := range paths {
		rules, err := pattern.RulesFromFile(path)
		if err != nil {
			failed = true
			fmt.Fprintf(out, "pattern file %d: FAIL: %v\n", i+1, err)
			continue
		}
		fmt.Fprintf(out, "pattern file %d: ok (%d rules)\n", i+1, len(rules))
		extra = append(extra, rules...)
	}
	if failed {
		return errCheckFailed
	}

	// A throwaway channel makes every sample eligible.
	const sampleChannel = "check"
	m := reactions.NewMatcher(reactions.NewChannelSet(sampleChannel), reactions.WithRules(extra...))
	for i, sample := range samples {
		fmt.Fprintf(out, "sample %d:", i+1)
		matched := false
		for _, r := range m.Rules() {
			if r.Match(sample) {
				fmt.Fprintf(out, " %s(%s)", r.ID, r.Emoji)
				matched = true
			}
		}
		if !matched {
			fmt.Fprint(out, " no match")
		}
		fmt.Fprintln(out)
	}

	return nil
}
