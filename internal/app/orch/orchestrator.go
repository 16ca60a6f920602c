package orch

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
)

// Orchestrator is the entry point the transport calls for every session event.
type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomManager
	Policy   app.Policy

	// identifyMu makes the name check and the rename one step.
	identifyMu sync.Mutex
}

// New builds the orchestrator together with its room catalog, so that every
// room reports dropped members back here.
func New(registry *app.Registry, policy app.Policy, opts ...core.RoomOption) *Orchestrator {
	o := &Orchestrator{Registry: registry, Policy: policy}
	opts = append(opts, core.WithDropHandler(o.HandleDropped))
	o.Rooms = app.NewRoomManager(opts...)
	return o
}

// HandleDropped applies the policy to a member a room removed after a failed
// send. Kicking closes the session; its read loop then disconnects it.
func (o *Orchestrator) HandleDropped(room *core.Room, member core.ClientHandle) {
	if o.Policy == nil {
		return
	}
	switch o.Policy.OnSendFailure(room, member) {
	case app.KickMember:
		sess, ok := member.(app.Session)
		if !ok {
			return
		}
		log.Info().Str("module", "orch").Str("room", string(room.Info().Name)).Str("name", sess.Name()).Msg("kicking dropped member")
		sess.Close()
	case app.NoAction:
	}
}

// Connect registers a fresh, still anonymous session.
func (o *Orchestrator) Connect(sid app.SessionID, sess app.Session, cancel context.CancelFunc) {
	if prev, ok := o.Registry.Bind(sid, sess, cancel); ok {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("session replaced")
		o.leaveCurrentRoom(prev)
		prev.Close()
	}
}

// Route hands one line of text to the sender's current room.
func (o *Orchestrator) Route(sid app.SessionID, text string) error {
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return app.ErrUnknownSession
	}
	if sess.Name() == "" {
		return app.ErrNotIdentified
	}
	room := sess.CurrentRoom()
	if room == nil || room.Closed() {
		room = o.Rooms.Lobby()
		room.Join(sess)
	}
	if !room.Has(sess) {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Str("name", sess.Name()).Msg("sender is not in its room")
		return app.ErrSessionDropped
	}
	room.SendMessage(sess, text)
	return nil
}

// Disconnect removes the session from its room and from the registry.
func (o *Orchestrator) Disconnect(sid app.SessionID, sess app.Session) {
	o.leaveCurrentRoom(sess)
	o.Registry.Unbind(sid, sess)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("name", sess.Name()).Msg("disconnected")
}

func (o *Orchestrator) leaveCurrentRoom(sess app.Session) {
	if room := sess.CurrentRoom(); room != nil {
		room.Leave(sess)
	}
}
