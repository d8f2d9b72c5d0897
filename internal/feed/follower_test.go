package feed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/casper7/wordle-reactions/pkg/reactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 5 * time.Second

func newMatcher() *reactions.Matcher {
	return reactions.NewMatcher(reactions.NewChannelSet("111"))
}

func writeFeed(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.jsonl")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func appendFeed(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
}

func nextResult(t *testing.T, results <-chan Result) Result {
	t.Helper()
	select {
	case res, ok := <-results:
		require.True(t, ok, "results channel closed")
		return res
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for result")
	}
	return Result{}
}

func nextError(t *testing.T, errs <-chan error) error {
	t.Helper()
	select {
	case err, ok := <-errs:
		require.True(t, ok, "error channel closed")
		return err
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for error")
	}
	return nil
}

func TestNew_Validation(t *testing.T) {
	path := writeFeed(t)

	_, err := New(path, nil)
	assert.Error(t, err)

	_, err = New(path, newMatcher(), WithMaxLineBytes(0))
	assert.ErrorContains(t, err, "invalid options")

	_, err = New(filepath.Join(t.TempDir(), "missing.jsonl"), newMatcher())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "missing.jsonl")

	_, err = New(t.TempDir(), newMatcher())
	assert.Error(t, err)
}

func TestFollow_FromStart(t *testing.T) {
	path := writeFeed(t,
		`{"channel_id":"111","message_id":"1","message":"Wordle 942 1/6"}`,
		``,
		`{"channel_id":"222","message_id":"2","message":"Wordle 942 1/6"}`,
	)

	f, err := New(path, newMatcher(), WithFromStart(true), WithPoll(true))
	require.NoError(t, err)
	defer f.Close()

	results, _, err := f.Follow(context.Background())
	require.NoError(t, err)

	first := nextResult(t, results)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, "1", first.MessageID)
	require.Len(t, first.Events, 2)
	assert.Equal(t, reactions.EmojiSolved, first.Events[0].Emoji)
	assert.Equal(t, reactions.EmojiFirstTry, first.Events[1].Emoji)

	// Blank line is skipped; the ineligible channel still yields a result.
	second := nextResult(t, results)
	assert.Equal(t, 3, second.Line)
	assert.Equal(t, "222", second.ChannelID)
	assert.NotNil(t, second.Events)
	assert.Empty(t, second.Events)
}

func TestFollow_AppendedRecords(t *testing.T) {
	path := writeFeed(t, `{"channel_id":"111","message_id":"old","message":"Wordle 942 X/6"}`)

	f, err := New(path, newMatcher(), WithPoll(true))
	require.NoError(t, err)
	defer f.Close()

	results, _, err := f.Follow(context.Background())
	require.NoError(t, err)

	// Give the tailer time to seek to the end before appending.
	time.Sleep(300 * time.Millisecond)
	appendFeed(t, path, `{"channel_id":"111","message_id":"new","message":"Wordle 942 X/6"}`)

	res := nextResult(t, results)
	assert.Equal(t, "new", res.MessageID)
	require.Len(t, res.Events, 1)
	assert.Equal(t, reactions.EmojiFailed, res.Events[0].Emoji)
}

func TestFollow_BadRecords(t *testing.T) {
	path := writeFeed(t,
		`not json`,
		`{"channel_id":"111","message_id":"2"}`,
		`{"channel_id":"111","message_id":"3","message":"`+strings.Repeat("a", 100)+`"}`,
		`{"channel_id":"111","message_id":"4","message":"Wordle 942 2/6"}`,
	)

	f, err := New(path, newMatcher(), WithFromStart(true), WithPoll(true), WithMaxLineBytes(80))
	require.NoError(t, err)
	defer f.Close()

	results, errs, err := f.Follow(context.Background())
	require.NoError(t, err)

	res := nextResult(t, results)
	assert.Equal(t, "4", res.MessageID)
	assert.Len(t, res.Events, 2)

	var recErr *RecordError
	err = nextError(t, errs)
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 1, recErr.Line)

	err = nextError(t, errs)
	assert.ErrorIs(t, err, ErrMissingMessage)

	err = nextError(t, errs)
	assert.ErrorIs(t, err, ErrLineTooLong)
}

func TestFollow_ContextCancelClosesChannels(t *testing.T) {
	path := writeFeed(t)

	f, err := New(path, newMatcher(), WithPoll(true))
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	results, errs, err := f.Follow(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-results:
		assert.False(t, ok)
	case <-time.After(waitTimeout):
		t.Fatal("results channel not closed after cancel")
	}
	for range errs {
	}
}

func TestFollow_Lifecycle(t *testing.T) {
	path := writeFeed(t)

	f, err := New(path, newMatcher(), WithPoll(true))
	require.NoError(t, err)

	_, _, err = f.Follow(context.Background())
	require.NoError(t, err)

	_, _, err = f.Follow(context.Background())
	assert.True(t, errors.Is(err, ErrAlreadyFollowing))

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	g, err := New(path, newMatcher())
	require.NoError(t, err)
	require.NoError(t, g.Close())
	_, _, err = g.Follow(context.Background())
	assert.ErrorIs(t, err, ErrFollowerClosed)
}
