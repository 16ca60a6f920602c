package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/domain"
)

// handleConnect names the session and drops it into the lobby.
func (ctl *SignalWSController) handleConnect(
	sid app.SessionID,
	conn *wsClient,
	data []byte,
) {
	type connectPayload struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	var p connectPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad connect payload")
		ctl.sendError(conn, "bad_payload")
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("name", p.Name).Msg("connect")
	if err := ctl.Orch.Identify(sid, p.Name); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("identify failed")
		ctl.sendError(conn, err.Error())
		return
	}
	ctl.handleWhoAmI(sid, conn)
}

func (ctl *SignalWSController) handleWhoAmI(
	sid app.SessionID,
	conn *wsClient,
) {
	name, room, ok := ctl.Orch.WhoAmI(sid)
	if !ok {
		ctl.sendError(conn, "unknown_session")
		return
	}
	resp := struct {
		Type     string          `json:"type"`
		Username string          `json:"username"`
		RoomName domain.RoomName `json:"room_name,omitempty"`
	}{
		Type:     "whoami",
		Username: name,
		RoomName: room,
	}
	ctl.sendJSON(conn, resp)
}
