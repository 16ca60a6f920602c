package core

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/dkeye/Chat/internal/domain"
)

// Room is a threadsafe in-memory chat room.
// It owns its membership and mute table and never touches transport resources.
type Room struct {
	info     domain.Room
	registry RoomRegistry
	dice     Dice
	logger   zerolog.Logger
	onDrop   DropHandler

	mu      sync.RWMutex
	closed  bool
	members []ClientHandle
	dropped []ClientHandle
	mutes   *MuteTable
}

type RoomOption func(*Room)

// DropHandler hears about every member a room gave up on after a failed send.
// It runs without the room lock held.
type DropHandler func(room *Room, member ClientHandle)

func WithDice(d Dice) RoomOption {
	return func(r *Room) { r.dice = d }
}

func WithDropHandler(h DropHandler) RoomOption {
	return func(r *Room) { r.onDrop = h }
}

func NewRoom(info domain.Room, registry RoomRegistry, opts ...RoomOption) *Room {
	r := &Room{
		info:     info,
		registry: registry,
		dice:     randDice{},
		mutes:    NewMuteTable(),
		logger: log.With().
			Str("module", "core.room").
			Str("room", string(info.Name)).
			Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Info is the immutable descriptor the room was created with.
func (r *Room) Info() domain.Room { return r.info }

func (r *Room) IsLobby() bool { return r.info.Name.IsLobby() }

// Name returns an empty name once the room has been torn down.
func (r *Room) Name() domain.RoomName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ""
	}
	return r.info.Name
}

func (r *Room) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *Room) Has(c ClientHandle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Contains(r.members, c)
}

// MembersSnapshot lists member names in join order.
func (r *Room) MembersSnapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.members, func(c ClientHandle, _ int) string { return c.Name() })
}

// IsMuted reports whether listener has muted sender in this room.
func (r *Room) IsMuted(listener, sender string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mutes.IsMuted(listener, sender)
}

// Join adds c to the room and makes this room its current one.
// It returns false when the room is already torn down or c could not be greeted.
func (r *Room) Join(c ClientHandle) bool {
	return r.admit(c, func() bool {
		c.SetCurrentRoom(r)
		return true
	}) == joined
}

// joinFrom admits c only while c still belongs to from. Claiming c is a
// single step on the client, so two rooms racing for it cannot both win.
func (r *Room) joinFrom(c ClientHandle, from *Room) joinResult {
	return r.admit(c, func() bool { return c.SwapCurrentRoom(from, r) })
}

type joinResult int

const (
	joined joinResult = iota
	joinClosed
	joinMoved
	joinDropped
)

func (r *Room) admit(c ClientHandle, claim func() bool) joinResult {
	r.mu.Lock()
	defer r.unlock()
	if r.closed {
		r.logger.Warn().Str("client", c.Name()).Msg("join on closed room ignored")
		return joinClosed
	}
	if lo.Contains(r.members, c) {
		c.SetCurrentRoom(r)
		r.logger.Warn().Str("client", c.Name()).Msg("client already in room")
		return joined
	}
	if !claim() {
		r.logger.Info().Str("client", c.Name()).Msg("client moved elsewhere, join skipped")
		return joinMoved
	}

	name := c.Name()
	if name != "" && !r.greetLocked(c) {
		r.dropLocked(c)
		return joinDropped
	}
	r.members = append(r.members, c)
	r.logger.Info().Str("client", name).Int("members", len(r.members)).Msg("member added")

	if name != "" {
		r.sendStatusLocked(name, true, fmt.Sprintf("joined the room %s", r.info.Name))
		if !lo.Contains(r.members, c) {
			return joinDropped
		}
	}
	return joined
}

// greetLocked clears the joiner's roster and replays the current membership to it.
// c must not be a member yet.
func (r *Room) greetLocked(c ClientHandle) bool {
	if !c.SendClearList() {
		return false
	}
	for _, m := range r.members {
		if !c.SendConnectionStatus(m.Name(), true, "") {
			return false
		}
	}
	return true
}

// Leave removes c. The last member leaving tears the room down unless it is the lobby.
func (r *Room) Leave(c ClientHandle) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	wasMember := r.removeLocked(c)
	if wasMember {
		r.logger.Info().Str("client", c.Name()).Int("members", len(r.members)).Msg("member removed")
	}
	if wasMember && len(r.members) > 0 {
		r.sendStatusLocked(c.Name(), false, fmt.Sprintf("left the room %s", r.info.Name))
	}
	r.unlock()
}

func (r *Room) removeLocked(c ClientHandle) bool {
	idx := lo.IndexOf(r.members, c)
	if idx < 0 {
		return false
	}
	r.members = append(r.members[:idx], r.members[idx+1:]...)
	return true
}

// dropLocked records c as lost to a failed send. r.mu must be held.
func (r *Room) dropLocked(c ClientHandle) {
	r.dropped = append(r.dropped, c)
	r.logger.Info().Str("client", c.Name()).Msg("dropped client after failed send")
}

// unlock releases r.mu, then settles the members dropped while it was held
// and tears the room down if that left it empty.
func (r *Room) unlock() {
	dropped := r.dropped
	r.dropped = nil
	empty := len(r.members) == 0 && !r.closed
	r.mu.Unlock()

	for _, c := range dropped {
		c.SwapCurrentRoom(r, nil)
		if r.onDrop != nil {
			r.onDrop(r, c)
		}
	}
	if empty {
		r.closeIfEmpty()
	}
}

func (r *Room) closeIfEmpty() {
	if r.IsLobby() {
		return
	}
	if r.MemberCount() > 0 {
		return
	}
	r.logger.Info().Msg("closing empty room")
	r.Close()
}

// Close tears the room down: remaining members are moved to the lobby and
// the registry forgets the room. Closing twice, or closing the lobby, does nothing.
func (r *Room) Close() {
	if r.IsLobby() {
		return
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	remaining := r.members
	r.members = nil
	r.mu.Unlock()

	if len(remaining) > 0 {
		r.logger.Info().Int("count", len(remaining)).Msg("migrating members to lobby")
		lobby := r.registry.Lobby()
		for _, c := range remaining {
			if err := migrate(r, lobby, c); err != nil {
				r.logger.Error().Err(err).Str("client", c.Name()).Msg("migration failed")
			}
		}
		r.logger.Info().Msg("done migrating members to lobby")
	}
	r.registry.Forget(r)
	r.logger.Info().Msg("room closed")
}

// migrate moves c from the closing room to the lobby unless c has already
// switched to another room on its own.
func migrate(from, lobby *Room, c ClientHandle) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic during migration: %v", rec)
		}
	}()
	if lobby == nil {
		return ErrRoomNotFound
	}
	switch lobby.joinFrom(c, from) {
	case joinClosed:
		return ErrRoomClosed
	case joinDropped:
		return ErrSendFailed
	case joinMoved:
		from.logger.Info().Str("client", c.Name()).Msg("client left on its own, not migrated")
	case joined:
	}
	return nil
}
