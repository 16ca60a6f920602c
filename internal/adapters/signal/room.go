package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/app"
)

// handleMessage hands a line of chat text to the orchestrator. Commands and
// mentions are recognised by the room, not here.
func (ctl *SignalWSController) handleMessage(
	sid app.SessionID,
	conn *wsClient,
	data []byte,
) {
	type messagePayload struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if p.Text == "" {
		return
	}
	if err := ctl.Orch.Route(sid, p.Text); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("route failed")
		ctl.sendError(conn, err.Error())
	}
}
