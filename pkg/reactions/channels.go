package reactions

import "strings"

// ChannelSet is the read-only set of channel IDs where reactions are enabled.
// The zero value contains no channels.
type ChannelSet struct {
	ids map[string]struct{}
}

// NewChannelSet builds a set from channel IDs. Surrounding whitespace is
// trimmed and empty IDs are ignored.
func NewChannelSet(ids ...string) ChannelSet {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return ChannelSet{ids: set}
}

// Contains reports whether id is an eligible channel.
func (s ChannelSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of eligible channels.
func (s ChannelSet) Len() int {
	return len(s.ids)
}
