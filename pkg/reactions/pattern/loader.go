package pattern

import (
	"errors"
	"fmt"

	"github.com/casper7/wordle-reactions/internal/safefile"
	"gopkg.in/yaml.v3"
)

const (
	// MaxPatternFileSize is the maximum allowed size for a pattern file (1MB).
	MaxPatternFileSize = 1 * 1024 * 1024

	// MaxPatternLength is the maximum allowed length for a regex pattern.
	MaxPatternLength = 512

	// MaxPatternCount is the maximum number of patterns in one file.
	MaxPatternCount = 1000

	// SupportedVersion is the currently supported pattern file format version.
	SupportedVersion = 1
)

// Load reads and validates a pattern file.
// Only regular files are accepted, and error messages never include path.
//
// Example:
//
//	pf, err := pattern.Load("extra-games.yaml")
//	if err != nil {
//	    log.Fatalf("failed to load pattern file: %v", err)
//	}
func Load(path string) (*PatternFile, error) {
	data, err := safefile.ReadLimited(path, MaxPatternFileSize)
	if err != nil {
		if errors.Is(err, safefile.ErrEmpty) {
			return nil, errors.New("pattern file is empty")
		}
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates a pattern file from a byte slice.
func LoadBytes(data []byte) (*PatternFile, error) {
	if len(data) == 0 {
		return nil, errors.New("pattern file is empty")
	}
	if len(data) > MaxPatternFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", len(data), MaxPatternFileSize)
	}

	var pf PatternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return &pf, nil
}

// Validate checks the file structure: a supported version, between one and
// MaxPatternCount patterns, and unique IDs with an emoji and a regex each.
// Regex size and syntax are checked by Compile.
func (pf *PatternFile) Validate() error {
	switch n := len(pf.Patterns); {
	case pf.Version != SupportedVersion:
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", pf.Version, SupportedVersion),
		}
	case n == 0:
		return &ValidationError{Field: "patterns", Message: "at least one pattern is required"}
	case n > MaxPatternCount:
		return &ValidationError{
			Field:   "patterns",
			Message: fmt.Sprintf("too many patterns (%d), maximum allowed is %d", n, MaxPatternCount),
		}
	}

	firstIndex := make(map[string]int, len(pf.Patterns))
	for i, p := range pf.Patterns {
		if err := p.checkRequired(i); err != nil {
			return err
		}
		if prev, dup := firstIndex[p.ID]; dup {
			return &PatternError{
				Index:   i,
				ID:      p.ID,
				Field:   "id",
				Message: fmt.Sprintf("duplicate id (previously defined at pattern[%d])", prev),
			}
		}
		firstIndex[p.ID] = i
	}

	return nil
}

// checkRequired reports the first empty field of p, in file order.
func (p Pattern) checkRequired(index int) error {
	fields := []struct{ name, value string }{
		{"id", p.ID},
		{"emoji", p.Emoji},
		{"regex", p.Regex},
	}
	for _, f := range fields {
		if f.value != "" {
			continue
		}
		return &PatternError{
			Index:   index,
			ID:      p.ID,
			Field:   f.name,
			Message: f.name + " is required",
		}
	}
	return nil
}
