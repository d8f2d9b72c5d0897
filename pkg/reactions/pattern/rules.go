package pattern

import (
	"errors"
	"fmt"
	"regexp/syntax"

	"github.com/casper7/wordle-reactions/pkg/reactions"
)

// Compile turns a validated PatternFile into reaction rules, in file order.
// Returns a *PatternError if a regex is longer than MaxPatternLength or
// does not compile; the latter wraps the regexp error.
//
// Example:
//
//	pf, err := pattern.Load("extra-games.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rules, err := pattern.Compile(pf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := reactions.NewMatcher(channels, reactions.WithRules(rules...))
func Compile(pf *PatternFile) ([]reactions.Rule, error) {
	if pf == nil {
		return nil, errors.New("pattern file is nil")
	}

	rules := make([]reactions.Rule, 0, len(pf.Patterns))
	for i, p := range pf.Patterns {
		r, err := compileRule(i, p)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	return rules, nil
}

// compileRule bounds the regex source before compiling it, so an oversized
// expression never reaches the regexp parser.
func compileRule(index int, p Pattern) (reactions.Rule, error) {
	regexErr := func(msg string, cause error) error {
		return &PatternError{Index: index, ID: p.ID, Field: "regex", Message: msg, Cause: cause}
	}

	if len(p.Regex) > MaxPatternLength {
		return reactions.Rule{}, regexErr(
			fmt.Sprintf("pattern too long: %d bytes (max %d)", len(p.Regex), MaxPatternLength), nil)
	}

	r, err := reactions.NewRule(p.ID, p.Regex, p.Emoji)
	if err != nil {
		return reactions.Rule{}, regexErr("invalid regular expression: "+regexpMessage(err), err)
	}
	return r, nil
}

// RulesFromFile loads a pattern file and compiles it in one step.
func RulesFromFile(path string) ([]reactions.Rule, error) {
	pf, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Compile(pf)
}

// RulesFromFiles loads several pattern files and concatenates their rules in
// argument order. Errors name the file by position, not by path.
func RulesFromFiles(paths []string) ([]reactions.Rule, error) {
	var all []reactions.Rule
	for i, path := range paths {
		rules, err := RulesFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("pattern file %d: %w", i+1, err)
		}
		all = append(all, rules...)
	}
	return all, nil
}

// regexpMessage reports the syntax error without the rule prefix added by
// reactions.NewRule.
func regexpMessage(err error) string {
	var synErr *syntax.Error
	if errors.As(err, &synErr) {
		return synErr.Error()
	}
	return err.Error()
}
