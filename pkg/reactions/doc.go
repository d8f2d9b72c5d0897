// Package reactions matches chat messages against a catalogue of daily
// puzzle game results and produces add-reaction events.
//
// This package allows you to:
//   - Evaluate a message body against the built-in game catalogue
//   - Restrict reactions to an allow-list of channels
//   - Extend the catalogue with rules loaded from YAML pattern files
//
// # Basic Usage
//
//	channels := reactions.NewChannelSet("1234567890")
//	m := reactions.NewMatcher(channels)
//
//	events := m.Evaluate("Wordle 942 3/6\n\n⬛🟨⬛⬛⬛\n🟩🟩🟩🟩🟩", "1234567890", "42")
//	for _, ev := range events {
//	    fmt.Println(ev.Emoji)
//	}
//
// # Matching Semantics
//
// Every rule is tested against the whole message body. Matching is
// case-insensitive and line-aware: a rule may require a header line followed
// by a result line, and ^ and $ anchor at line boundaries. The catalogue is
// not first-match-wins; every matching rule produces its own event, so a
// first-try Wordle result yields both the generic solved reaction and the
// first-try reaction.
//
// Evaluate never returns nil. Messages from channels outside the ChannelSet
// yield an empty slice without any rule being evaluated.
//
// # Custom Rules
//
// Additional rules can be loaded with the pattern sub-package and appended to
// the catalogue:
//
//	extra, err := pattern.RulesFromFile("extra.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := reactions.NewMatcher(channels, reactions.WithRules(extra...))
//
// # Thread Safety
//
// A Matcher is immutable after construction and is safe for concurrent use.
package reactions
