package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/domain"
)

// Identify names an anonymous session and puts it in the lobby.
func (o *Orchestrator) Identify(sid app.SessionID, name string) error {
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return app.ErrUnknownSession
	}
	if sess.Name() != "" {
		return app.ErrAlreadyIdentified
	}
	if err := domain.ValidateUsername(name); err != nil {
		return err
	}
	o.identifyMu.Lock()
	defer o.identifyMu.Unlock()
	if o.Registry.NameTaken(sid, name) {
		return app.ErrUsernameTaken
	}
	if err := sess.SetName(name); err != nil {
		return err
	}
	o.Rooms.Lobby().Join(sess)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("name", name).Msg("identified")
	return nil
}

// WhoAmI returns the session's name and the room it is in.
func (o *Orchestrator) WhoAmI(sid app.SessionID) (string, domain.RoomName, bool) {
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return "", "", false
	}
	var room domain.RoomName
	if r := sess.CurrentRoom(); r != nil {
		room = r.Name()
	}
	return sess.Name(), room, true
}

func (o *Orchestrator) CreateRoom(name domain.RoomName) bool {
	return o.Rooms.CreateRoom(name)
}

// EvictRoom closes a room administratively; its members end up in the lobby.
func (o *Orchestrator) EvictRoom(name domain.RoomName) bool {
	ok := o.Rooms.CloseRoom(name)
	log.Info().Str("module", "orch").Str("room", string(name)).Bool("closed", ok).Msg("evict room")
	return ok
}
