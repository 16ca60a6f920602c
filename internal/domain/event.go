package domain

// Outbound event types as seen by the client.
const (
	EventStatus    = "status"
	EventMessage   = "message"
	EventClearList = "clear_list"
	EventError     = "error"
)

// ConnectionStatus tells a client that a peer entered or left its room.
type ConnectionStatus struct {
	Type      string `json:"type"`
	Peer      string `json:"peer"`
	Connected bool   `json:"connected"`
	Note      string `json:"note,omitempty"`
}

func NewConnectionStatus(peer string, connected bool, note string) ConnectionStatus {
	return ConnectionStatus{Type: EventStatus, Peer: peer, Connected: connected, Note: note}
}

// ChatMessage carries text spoken by Sender.
type ChatMessage struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

func NewChatMessage(sender, text string) ChatMessage {
	return ChatMessage{Type: EventMessage, Sender: sender, Text: text}
}

// ClearList asks the client to drop the roster it is displaying.
type ClearList struct {
	Type string `json:"type"`
}

func NewClearList() ClearList {
	return ClearList{Type: EventClearList}
}
