// Package feed follows a JSON Lines file of chat messages and evaluates each
// one against a reaction matcher, like tail -f piped into the react command.
//
// Each line is a record:
//
//	{"channel_id":"123","message_id":"456","message":"Wordle 942 3/6\n..."}
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/casper7/wordle-reactions/internal/safefile"
	"github.com/casper7/wordle-reactions/pkg/reactions"
	"github.com/nxadm/tail"
)

// errBuffer is the error channel capacity. Errors are dropped when full.
const errBuffer = 16

// Evaluator produces reaction events for one message.
// *reactions.Matcher implements it.
type Evaluator interface {
	Evaluate(message, channelID, messageID string) []reactions.Event
}

// Record is one message read from the feed.
type Record struct {
	ChannelID string  `json:"channel_id"`
	MessageID string  `json:"message_id"`
	Message   *string `json:"message"`
}

// Result pairs a record with the events it produced. Events is never nil.
type Result struct {
	Line      int
	ChannelID string
	MessageID string
	Events    []reactions.Event
}

// Follower tails a record file.
type Follower struct {
	path string
	eval Evaluator
	cfg  followConfig
	log  *slog.Logger

	mu        sync.Mutex
	closed    bool
	following bool
	cancel    context.CancelFunc
	doneCh    chan struct{}
}

// New creates a Follower for path. The file must already exist and be a
// regular file. No goroutines are started until Follow is called.
func New(path string, eval Evaluator, opts ...Option) (*Follower, error) {
	if eval == nil {
		return nil, fmt.Errorf("evaluator is nil")
	}

	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	f, _, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", safefile.SanitizePathError(err))
	}
	f.Close()

	return &Follower{
		path: path,
		eval: eval,
		cfg:  *cfg,
		log:  cfg.logger,
	}, nil
}

// Follow starts tailing and returns result and error channels.
// Both channels close when ctx is cancelled, Close is called, or the tailer
// stops. Follow can only be called once.
func (f *Follower) Follow(ctx context.Context) (<-chan Result, <-chan error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, nil, ErrFollowerClosed
	}
	if f.following {
		return nil, nil, ErrAlreadyFollowing
	}

	whence := io.SeekEnd
	if f.cfg.fromStart {
		whence = io.SeekStart
	}
	t, err := tail.TailFile(f.path, tail.Config{
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
		ReOpen:    true,
		Follow:    true,
		MustExist: true,
		Poll:      f.cfg.poll,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("starting tailer: %w", safefile.SanitizePathError(err))
	}
	f.following = true

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.doneCh = make(chan struct{})

	resultCh := make(chan Result)
	errCh := make(chan error, errBuffer)

	go f.run(ctx, t, resultCh, errCh)

	return resultCh, errCh, nil
}

// Close stops following and waits for the goroutine to exit.
// Safe to call multiple times.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
	doneCh := f.doneCh
	f.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (f *Follower) run(ctx context.Context, t *tail.Tail, resultCh chan<- Result, errCh chan<- error) {
	defer close(f.doneCh)
	defer close(resultCh)
	defer close(errCh)
	defer t.Cleanup()
	defer func() { _ = t.Stop() }()

	f.log.Debug("following feed", "from_start", f.cfg.fromStart, "poll", f.cfg.poll)

	lineNum := 0
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines:
			if !ok {
				if err := t.Err(); err != nil {
					sendFinalError(ctx, errCh, fmt.Errorf("%w: %w", ErrTailerStopped, err))
				}
				return
			}
			lineNum++
			if line.Err != nil {
				sendError(ctx, errCh, &RecordError{Line: lineNum, Err: line.Err})
				continue
			}
			res, err := f.evaluateLine(lineNum, line.Text)
			if err != nil {
				sendError(ctx, errCh, err)
				continue
			}
			if res == nil {
				continue
			}
			select {
			case resultCh <- *res:
			case <-ctx.Done():
				return
			}
		}
	}
}

// evaluateLine decodes one record and evaluates it. Blank lines yield nil.
func (f *Follower) evaluateLine(lineNum int, text string) (*Result, error) {
	text = strings.TrimRight(text, "\r")
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if len(text) > f.cfg.maxLineBytes {
		return nil, &RecordError{Line: lineNum, Err: ErrLineTooLong}
	}

	var rec Record
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, &RecordError{Line: lineNum, Err: err}
	}
	if rec.Message == nil {
		return nil, &RecordError{Line: lineNum, Err: ErrMissingMessage}
	}

	events := f.eval.Evaluate(*rec.Message, rec.ChannelID, rec.MessageID)
	f.log.Debug("evaluated record", "line", lineNum, "message_id", rec.MessageID, "events", len(events))

	return &Result{
		Line:      lineNum,
		ChannelID: rec.ChannelID,
		MessageID: rec.MessageID,
		Events:    events,
	}, nil
}

func sendError(ctx context.Context, errCh chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case errCh <- err:
	case <-ctx.Done():
	default:
		// Buffer full; drop rather than stall the feed.
	}
}

// sendFinalError waits for buffer space instead of dropping, so the reason
// following ended is always delivered unless ctx is done.
func sendFinalError(ctx context.Context, errCh chan<- error, err error) {
	select {
	case errCh <- err:
	case <-ctx.Done():
	}
}
