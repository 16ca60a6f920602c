package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type (
	RoomName string
	RoomID   string
)

const (
	// LobbyName is the always-present fallback room.
	LobbyName RoomName = "Lobby"

	MaxRoomNameLen = 36

	CommandTrigger = "/"
	MentionTrigger = "@"
)

var (
	ErrRoomNameEmpty   = errors.New("room name empty")
	ErrRoomNameTooLong = errors.New("room name too long")
	ErrRoomNameInvalid = errors.New("room name contains whitespace or a trigger character")
)

type Room struct {
	ID   RoomID
	Name RoomName
}

func NewRoom(name RoomName) (Room, error) {
	if err := name.Validate(); err != nil {
		return Room{}, err
	}
	return Room{ID: RoomID(uuid.NewString()), Name: name}, nil
}

func (n RoomName) Validate() error {
	if len(n) == 0 {
		return ErrRoomNameEmpty
	}
	if len(n) > MaxRoomNameLen {
		return ErrRoomNameTooLong
	}
	if strings.ContainsAny(string(n), " \t\r\n"+CommandTrigger+MentionTrigger) {
		return ErrRoomNameInvalid
	}
	return nil
}

// Key is the case-insensitive lookup key of a room name.
func (n RoomName) Key() string {
	return strings.ToLower(string(n))
}

func (n RoomName) IsLobby() bool {
	return strings.EqualFold(string(n), string(LobbyName))
}
