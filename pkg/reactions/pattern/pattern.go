// Package pattern loads extra reaction rules from YAML pattern files.
// Rules from a pattern file are appended after the built-in catalogue, so a
// server can react to games the catalogue does not know about.
package pattern

// PatternFile represents the structure of a YAML pattern file.
//
// Example YAML file:
//
//	version: 1
//	patterns:
//	  - id: connections_solved
//	    emoji: "🔗"
//	    regex: 'connections\s+puzzle #\d+'
//	  - id: strands_spangram_first
//	    emoji: "🧵"
//	    regex: 'strands #\d+\n.*\n🟡'
type PatternFile struct {
	// Version is the pattern file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Patterns is the list of rule definitions, evaluated in order.
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern represents a single reaction rule definition.
type Pattern struct {
	// ID is a unique identifier for this rule (e.g., "connections_solved").
	ID string `yaml:"id"`

	// Emoji is the reaction added when the regex matches.
	Emoji string `yaml:"emoji"`

	// Regex is matched case-insensitively anywhere in the message body.
	// ^ and $ match at line boundaries and \n may be used to require a
	// following line.
	Regex string `yaml:"regex"`
}
