package reactions

// EventType identifies the kind of event emitted to the plugin host.
type EventType string

// TypeAddReaction asks the host to add an emoji reaction to a message.
const TypeAddReaction EventType = "add_reaction"

// Event is a single reaction request produced by a matching rule.
// The JSON field names form the plugin host's wire format.
type Event struct {
	Type      EventType `json:"type"`
	ChannelID string    `json:"channel_id"`
	MessageID string    `json:"message_id"`
	Emoji     string    `json:"emoji"`
}
