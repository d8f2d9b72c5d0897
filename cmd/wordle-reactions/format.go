package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/casper7/wordle-reactions/internal/feed"
)

// validFormats lists the output formats accepted by watch.
var validFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// writeJSON writes v as a single line of JSON. Emoji and HTML characters are
// written as-is rather than escaped.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// outputResult writes one feed result in the specified format.
func outputResult(format string, res feed.Result, out io.Writer) error {
	switch format {
	case "jsonl":
		return writeJSON(out, res.Events)
	case "pretty":
		return outputPretty(res, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// outputPretty writes a result in human-readable form:
//
//	[line 3] #123 msg 456: 🧠 1️⃣
func outputPretty(res feed.Result, out io.Writer) error {
	emojis := make([]string, 0, len(res.Events))
	for _, ev := range res.Events {
		emojis = append(emojis, ev.Emoji)
	}
	reaction := strings.Join(emojis, " ")
	if reaction == "" {
		reaction = "-"
	}
	_, err := fmt.Fprintf(out, "[line %d] #%s msg %s: %s\n", res.Line, res.ChannelID, res.MessageID, reaction)
	return err
}
