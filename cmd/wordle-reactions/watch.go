package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/casper7/wordle-reactions/internal/feed"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// recordWarnRate caps warnings about bad feed records per second.
const recordWarnRate = 10

type watchOptions struct {
	format    string
	fromStart bool
	poll      bool
	all       bool
}

func newWatchCmd(opts *globalOptions) *cobra.Command {
	wo := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <feed-file>",
		Short: "Follow a JSON Lines message feed and print reactions",
		Long: `Follow a file of chat messages and print the reactions each one earns.

Each line of the feed is a JSON object:
  {"channel_id": "123", "message_id": "456", "message": "Wordle 942 3/6"}

Lines appended to the file are evaluated as they arrive, like tail -f.
Channel eligibility and extra pattern files come from the same configuration
as the react subcommand.

Examples:
  # Replay an exported channel history, then keep following it
  wordle-reactions watch --from-start history.jsonl

  # Human-readable output including messages with no reactions
  wordle-reactions watch --format pretty --all history.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, wo, args[0])
		},
	}

	cmd.Flags().StringVarP(&wo.format, "format", "f", "jsonl", "Output format: jsonl, pretty")
	cmd.Flags().BoolVar(&wo.fromStart, "from-start", false, "Evaluate records already in the file")
	cmd.Flags().BoolVar(&wo.poll, "poll", false, "Poll for changes instead of using file notifications")
	cmd.Flags().BoolVar(&wo.all, "all", false, "Also print messages that earned no reactions")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *globalOptions, wo *watchOptions, path string) error {
	if !validFormats[wo.format] {
		return fmt.Errorf("unknown format: %s", wo.format)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger := opts.newLogger(cfg, cmd.ErrOrStderr())

	m, err := buildMatcher(cfg, opts.patternFiles, logger)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	follower, err := feed.New(path, m,
		feed.WithFromStart(wo.fromStart),
		feed.WithPoll(wo.poll),
		feed.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer follower.Close()

	results, errs, err := follower.Follow(ctx)
	if err != nil {
		return err
	}

	p := newFeedPrinter(wo.format, wo.all, cmd.OutOrStdout(), logger)
	return p.consume(ctx, results, errs)
}

// errFeedStopped is returned when the follower ends without cancellation
// and gave no reason.
var errFeedStopped = errors.New("feed follower stopped")

// feedPrinter writes follower results and logs skipped records.
type feedPrinter struct {
	format string
	all    bool
	out    io.Writer
	logger *slog.Logger

	warnLimiter *rate.Limiter
	suppressed  int
}

func newFeedPrinter(format string, all bool, out io.Writer, logger *slog.Logger) *feedPrinter {
	return &feedPrinter{
		format:      format,
		all:         all,
		out:         out,
		logger:      logger,
		warnLimiter: rate.NewLimiter(recordWarnRate, recordWarnRate),
	}
}

// consume runs until ctx is done or the follower closes its channels.
// Closing without cancellation is an error: the tailer died.
func (p *feedPrinter) consume(ctx context.Context, results <-chan feed.Result, errs <-chan error) error {
	for {
		select {
		case res, ok := <-results:
			if !ok {
				return p.finish(ctx, errs)
			}
			if err := p.print(res); err != nil {
				return err
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if stopErr := p.handleError(err); stopErr != nil {
				return stopErr
			}

		case <-ctx.Done():
			return nil
		}
	}
}

func (p *feedPrinter) print(res feed.Result) error {
	if len(res.Events) == 0 && !p.all {
		return nil
	}
	if err := outputResult(p.format, res, p.out); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

// handleError logs a skipped record, rate-limited. A tailer failure is
// returned instead.
func (p *feedPrinter) handleError(err error) error {
	if errors.Is(err, feed.ErrTailerStopped) {
		return err
	}
	if !p.warnLimiter.Allow() {
		p.suppressed++
		return nil
	}
	p.logger.Warn("skipping feed record", "error", err, "suppressed", p.suppressed)
	p.suppressed = 0
	return nil
}

// finish drains errors left behind after the results channel closed.
func (p *feedPrinter) finish(ctx context.Context, errs <-chan error) error {
	if errs != nil {
		for err := range errs {
			if stopErr := p.handleError(err); stopErr != nil {
				return stopErr
			}
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	return errFeedStopped
}
