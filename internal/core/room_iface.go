//go:generate go run go.uber.org/mock/mockgen -source=room_iface.go -destination=../mocks/mock_room_registry.go -package=mocks
package core

import "github.com/dkeye/Chat/internal/domain"

// RoomRegistry is what a room needs from the catalog that owns it.
type RoomRegistry interface {
	// Lobby returns the fallback room. It always exists.
	Lobby() *Room
	// CreateRoom reports false when the name is taken or invalid.
	CreateRoom(name domain.RoomName) bool
	Room(name domain.RoomName) (*Room, bool)
	// Forget drops a torn down room from the catalog.
	Forget(room *Room)
}

// PublishResult reports the outcome of one delivery pass.
type PublishResult struct {
	SentTo  int
	Dropped []ClientHandle
}

type RoomInfo struct {
	Name        domain.RoomName `json:"name"`
	MemberCount int             `json:"client_count"`
}

// RoomManager is the full catalog surface used by the orchestrator and REST API.
type RoomManager interface {
	RoomRegistry
	List() []RoomInfo
	// CloseRoom tears a room down, moving its members to the lobby.
	CloseRoom(name domain.RoomName) bool
}
