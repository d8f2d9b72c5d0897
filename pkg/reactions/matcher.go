package reactions

import "log/slog"

// Matcher decides which reactions apply to a message.
//
// Matcher is safe for concurrent use by multiple goroutines.
type Matcher struct {
	channels ChannelSet
	rules    []Rule
	log      *slog.Logger
}

// NewMatcher creates a Matcher over the given eligible channels.
// Without options it evaluates the built-in catalogue.
func NewMatcher(channels ChannelSet, opts ...MatcherOption) *Matcher {
	cfg := applyMatcherOptions(opts)

	rules := make([]Rule, 0, len(cfg.catalogue)+len(cfg.extra))
	rules = append(rules, cfg.catalogue...)
	rules = append(rules, cfg.extra...)

	return &Matcher{
		channels: channels,
		rules:    rules,
		log:      cfg.logger,
	}
}

// Evaluate returns one add-reaction event for every rule matching message,
// in rule order. It returns an empty, non-nil slice when channelID is not
// eligible or nothing matches.
func (m *Matcher) Evaluate(message, channelID, messageID string) []Event {
	events := []Event{}

	if !m.channels.Contains(channelID) {
		m.log.Debug("channel not eligible", "channel_id", channelID)
		return events
	}

	for _, r := range m.rules {
		if !r.Match(message) {
			continue
		}
		m.log.Debug("rule matched", "rule", r.ID, "emoji", r.Emoji, "message_id", messageID)
		events = append(events, Event{
			Type:      TypeAddReaction,
			ChannelID: channelID,
			MessageID: messageID,
			Emoji:     r.Emoji,
		})
	}

	return events
}

// Rules returns a copy of the rules in evaluation order.
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}
