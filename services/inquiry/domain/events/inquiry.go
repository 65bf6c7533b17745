package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicInquiryReceived is the event bus topic published after an inquiry
// has been validated and relayed to the email provider.
const TopicInquiryReceived = "inquiry.received"

// InquiryReceivedEvent is published once per successfully relayed inquiry.
// It carries no sender contact details — the event stream is for
// operational visibility, not for mail delivery.
type InquiryReceivedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	InquiryID  uuid.UUID `json:"inquiry_id"`
	CardID     string    `json:"card_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
