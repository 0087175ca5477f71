package a2a

// Message represents all non-artifact communication between client and agent.
type Message struct {
	MessageID string         `json:"message_id,omitempty"`
	Role      string         `json:"role"` // "user" or "agent"
	Parts     []Part         `json:"parts"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewMessage(messageID, role string, parts ...Part) *Message {
	return &Message{
		MessageID: messageID,
		Role:      role,
		Parts:     parts,
	}
}
