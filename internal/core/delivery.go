package core

import (
	"strings"

	"github.com/dkeye/Chat/internal/domain"
)

// SendMessage routes one line of text from sender: slash commands first,
// then @mentions, and ordinary broadcast otherwise.
func (r *Room) SendMessage(sender ClientHandle, text string) {
	if r.Closed() {
		r.logger.Warn().Str("client", sender.Name()).Msg("message to closed room dropped")
		return
	}
	if !r.Has(sender) {
		r.logger.Warn().Str("client", sender.Name()).Msg("message from non-member dropped")
		return
	}
	r.logger.Debug().Str("client", sender.Name()).Int("members", r.MemberCount()).Msg("routing message")

	if r.processCommand(sender, text) {
		return
	}
	if r.processPrivateMessage(sender, text) {
		return
	}
	r.Broadcast(sender, text)
}

// Broadcast delivers text to every member that has not muted sender.
func (r *Room) Broadcast(sender ClientHandle, text string) PublishResult {
	from := sender.Name()
	r.mu.Lock()
	res := r.deliverLocked(
		func(m ClientHandle) bool { return !r.mutes.IsMuted(m.Name(), from) },
		func(m ClientHandle) bool { return m.Send(from, text) },
	)
	r.unlock()

	r.logger.Debug().Str("from", from).Int("sent_to", res.SentTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}

// processPrivateMessage handles "@name text". The whole text goes to the
// named member and is echoed to the sender.
func (r *Room) processPrivateMessage(sender ClientHandle, text string) bool {
	recipient, ok := ParseMention(text)
	if !ok {
		return false
	}
	r.logger.Info().Str("from", sender.Name()).Str("to", recipient).Msg("private message")
	res := r.SendPrivate(sender, recipient, text)
	if res.SentTo == 0 {
		r.logger.Warn().Str("from", sender.Name()).Str("to", recipient).Msg("private message reached nobody")
	}
	return true
}

// SendPrivate delivers text to members named recipient and to the sender itself,
// skipping members that muted the sender.
func (r *Room) SendPrivate(sender ClientHandle, recipient, text string) PublishResult {
	from := sender.Name()
	r.mu.Lock()
	res := r.deliverLocked(
		func(m ClientHandle) bool {
			name := m.Name()
			if name != recipient && name != from {
				return false
			}
			return !r.mutes.IsMuted(name, from)
		},
		func(m ClientHandle) bool { return m.Send(from, text) },
	)
	r.unlock()
	return res
}

// reply sends text to c alone, as if c had said it. Used for command results.
func (r *Room) reply(c ClientHandle, text string) {
	from := c.Name()
	r.mu.Lock()
	r.deliverLocked(
		func(m ClientHandle) bool { return m == c },
		func(m ClientHandle) bool { return m.Send(from, text) },
	)
	r.unlock()
}

// sendStatusLocked tells every member that peer connected or disconnected.
func (r *Room) sendStatusLocked(peer string, connected bool, note string) PublishResult {
	return r.deliverLocked(
		func(ClientHandle) bool { return true },
		func(m ClientHandle) bool { return m.SendConnectionStatus(peer, connected, note) },
	)
}

// deliverLocked runs one pass over the membership. Members selected by want
// get send; a failed send drops that member in the same pass and hands it to
// the drop handler once the lock is released. r.mu must be held for writing.
func (r *Room) deliverLocked(want func(ClientHandle) bool, send func(ClientHandle) bool) PublishResult {
	res := PublishResult{}
	kept := r.members[:0]
	for _, m := range r.members {
		if !want(m) {
			kept = append(kept, m)
			continue
		}
		if send(m) {
			res.SentTo++
			kept = append(kept, m)
			continue
		}
		res.Dropped = append(res.Dropped, m)
		r.dropLocked(m)
	}
	clear(r.members[len(kept):])
	r.members = kept
	return res
}

// ParseMention returns the recipient of an "@name ..." message.
func ParseMention(text string) (string, bool) {
	rest, ok := strings.CutPrefix(text, domain.MentionTrigger)
	if !ok {
		return "", false
	}
	if rest == "" || strings.TrimLeft(rest, " \t") != rest {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
