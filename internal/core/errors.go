package core

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidRollBound = errors.New("roll bound must be a positive integer")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomExists       = errors.New("room could not be created")
	ErrRoomClosed       = errors.New("room closed")
	ErrSendFailed       = errors.New("send failed, client dropped")
	ErrClientMoved      = errors.New("client already moved to another room")
)
