package core

import (
	"slices"

	"github.com/samber/lo"
)

// MuteTable maps a listener name to the sender names it does not want to hear.
// Keys are display names, so a renamed client loses its mutes and a reused
// name inherits them.
//
// MuteTable is not safe for concurrent use; Room guards it with its own lock.
type MuteTable struct {
	lists map[string]map[string]struct{}
}

func NewMuteTable() *MuteTable {
	return &MuteTable{lists: make(map[string]map[string]struct{})}
}

func (t *MuteTable) Mute(listener, sender string) {
	set, ok := t.lists[listener]
	if !ok {
		set = make(map[string]struct{})
		t.lists[listener] = set
	}
	set[sender] = struct{}{}
}

func (t *MuteTable) Unmute(listener, sender string) {
	set, ok := t.lists[listener]
	if !ok {
		return
	}
	delete(set, sender)
}

func (t *MuteTable) IsMuted(listener, sender string) bool {
	_, ok := t.lists[listener][sender]
	return ok
}

// Muted lists the senders muted by listener, sorted.
func (t *MuteTable) Muted(listener string) []string {
	out := lo.Keys(t.lists[listener])
	slices.Sort(out)
	return out
}
