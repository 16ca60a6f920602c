package app

import "github.com/dkeye/Chat/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	KickMember
)

// Policy decides what happens to a member whose send failed. The room has
// already removed it by then.
type Policy interface {
	OnSendFailure(room *core.Room, member core.ClientHandle) BackpressureAction
}

// SimplePolicy treats a failed send as a dead connection.
type SimplePolicy struct{}

func (SimplePolicy) OnSendFailure(*core.Room, core.ClientHandle) BackpressureAction {
	return KickMember
}
