package app

import (
	"cmp"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// RoomManagerImpl is the room catalog. Names are matched case-insensitively.
type RoomManagerImpl struct {
	mu    sync.RWMutex
	rooms map[string]*core.Room
	lobby *core.Room
	opts  []core.RoomOption
}

var _ core.RoomManager = (*RoomManagerImpl)(nil)

// NewRoomManager creates the catalog together with its lobby.
func NewRoomManager(opts ...core.RoomOption) *RoomManagerImpl {
	m := &RoomManagerImpl{
		rooms: make(map[string]*core.Room),
		opts:  opts,
	}
	info, _ := domain.NewRoom(domain.LobbyName)
	m.lobby = core.NewRoom(info, m, opts...)
	m.rooms[domain.LobbyName.Key()] = m.lobby
	return m
}

func (m *RoomManagerImpl) Lobby() *core.Room { return m.lobby }

func (m *RoomManagerImpl) CreateRoom(name domain.RoomName) bool {
	info, err := domain.NewRoom(name)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.rooms").Str("room", string(name)).Msg("invalid room name")
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[name.Key()]; ok {
		log.Warn().Str("module", "app.rooms").Str("room", string(name)).Msg("room already exists")
		return false
	}
	m.rooms[name.Key()] = core.NewRoom(info, m, m.opts...)
	log.Info().Str("module", "app.rooms").Str("room", string(name)).Str("id", string(info.ID)).Msg("room created")
	return true
}

func (m *RoomManagerImpl) Room(name domain.RoomName) (*core.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[name.Key()]
	return room, ok
}

func (m *RoomManagerImpl) Forget(room *core.Room) {
	if room == nil || room == m.lobby {
		return
	}
	key := room.Info().Name.Key()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rooms[key] == room {
		delete(m.rooms, key)
		log.Info().Str("module", "app.rooms").Str("room", string(room.Info().Name)).Msg("room forgotten")
	}
}

// List snapshots the catalog before asking rooms for their size so that
// no room lock is ever taken under the catalog lock.
func (m *RoomManagerImpl) List() []core.RoomInfo {
	m.mu.RLock()
	rooms := lo.Values(m.rooms)
	m.mu.RUnlock()

	out := lo.FilterMap(rooms, func(r *core.Room, _ int) (core.RoomInfo, bool) {
		name := r.Name()
		return core.RoomInfo{Name: name, MemberCount: r.MemberCount()}, name != ""
	})
	slices.SortFunc(out, func(a, b core.RoomInfo) int {
		return cmp.Compare(a.Name.Key(), b.Name.Key())
	})
	return out
}

func (m *RoomManagerImpl) CloseRoom(name domain.RoomName) bool {
	room, ok := m.Room(name)
	if !ok || room.IsLobby() {
		return false
	}
	room.Close()
	return true
}
