package reactions

import (
	"fmt"
	"regexp"
)

// matchFlags makes every rule case-insensitive and lets ^ and $ anchor at
// line boundaries, so results pasted in the middle of a message still match.
const matchFlags = "(?im)"

// Rule pairs a text predicate with the emoji it triggers.
// Rules are immutable once built.
type Rule struct {
	// ID names the rule in logs and pattern files (e.g. "wordle_first_try").
	ID string

	// Emoji is the reaction added when the rule matches.
	Emoji string

	re *regexp.Regexp
}

// NewRule compiles expr with the catalogue's matching flags.
func NewRule(id, expr, emoji string) (Rule, error) {
	re, err := regexp.Compile(matchFlags + expr)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", id, err)
	}
	return Rule{ID: id, Emoji: emoji, re: re}, nil
}

// MustRule is like NewRule but panics if expr does not compile.
// It is intended for package-level catalogue definitions.
func MustRule(id, expr, emoji string) Rule {
	r, err := NewRule(id, expr, emoji)
	if err != nil {
		panic(err)
	}
	return r
}

// Match reports whether the rule matches anywhere in message.
// A zero Rule never matches.
func (r Rule) Match(message string) bool {
	if r.re == nil {
		return false
	}
	return r.re.MatchString(message)
}

// Pattern returns the source expression, without the matching flags.
func (r Rule) Pattern() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()[len(matchFlags):]
}
