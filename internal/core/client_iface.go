package core

// ClientHandle is one connected participant as seen by a room.
// Sends are best effort and must never block: false means the
// connection is gone and the caller will drop the client.
type ClientHandle interface {
	// Name is empty until the client has identified itself.
	Name() string

	Send(sender, text string) bool
	SendConnectionStatus(peer string, connected bool, note string) bool
	SendClearList() bool

	CurrentRoom() *Room
	SetCurrentRoom(room *Room)
	// SwapCurrentRoom sets the current room to to only if it is still from.
	SwapCurrentRoom(from, to *Room) bool
}
