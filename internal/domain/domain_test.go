package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "ok", in: "alice"},
		{name: "max length", in: strings.Repeat("a", MaxUsernameLen)},
		{name: "empty", in: "", want: ErrUsernameEmpty},
		{name: "too long", in: strings.Repeat("a", MaxUsernameLen+1), want: ErrUsernameTooLong},
		{name: "space", in: "al ice", want: ErrUsernameInvalid},
		{name: "tab", in: "al\tice", want: ErrUsernameInvalid},
		{name: "command trigger", in: "al/ice", want: ErrUsernameInvalid},
		{name: "mention trigger", in: "@alice", want: ErrUsernameInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, ValidateUsername(tt.in), tt.want)
		})
	}
}

func TestNewUser(t *testing.T) {
	req := require.New(t)

	anon, err := NewUser("")
	req.NoError(err)
	req.NotEmpty(anon.ID)
	req.Empty(anon.Username)

	named, err := NewUser("bob")
	req.NoError(err)
	req.Equal("bob", named.Username)
	req.NotEqual(anon.ID, named.ID)

	_, err = NewUser("b o b")
	req.ErrorIs(err, ErrUsernameInvalid)
}

func TestUser_SetUsername_KeepsOldNameOnError(t *testing.T) {
	req := require.New(t)
	u, err := NewUser("alice")
	req.NoError(err)

	req.ErrorIs(u.SetUsername(""), ErrUsernameEmpty)
	req.Equal("alice", u.Username)

	req.NoError(u.SetUsername("carol"))
	req.Equal("carol", u.Username)
}

func TestRoomName_Validate(t *testing.T) {
	tests := []struct {
		in   RoomName
		want error
	}{
		{in: "dev"},
		{in: LobbyName},
		{in: RoomName(strings.Repeat("r", MaxRoomNameLen))},
		{in: "", want: ErrRoomNameEmpty},
		{in: RoomName(strings.Repeat("r", MaxRoomNameLen+1)), want: ErrRoomNameTooLong},
		{in: "my room", want: ErrRoomNameInvalid},
		{in: "a/b", want: ErrRoomNameInvalid},
		{in: "@dev", want: ErrRoomNameInvalid},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			require.ErrorIs(t, tt.in.Validate(), tt.want)
		})
	}
}

func TestNewRoom(t *testing.T) {
	req := require.New(t)

	a, err := NewRoom("dev")
	req.NoError(err)
	b, err := NewRoom("dev")
	req.NoError(err)
	req.Equal(RoomName("dev"), a.Name)
	req.NotEmpty(a.ID)
	req.NotEqual(a.ID, b.ID)

	_, err = NewRoom("")
	req.ErrorIs(err, ErrRoomNameEmpty)
}

func TestRoomName_KeyAndLobby(t *testing.T) {
	req := require.New(t)

	req.Equal("dev", RoomName("DeV").Key())
	req.True(LobbyName.IsLobby())
	req.True(RoomName("lobby").IsLobby())
	req.False(RoomName("lobby2").IsLobby())
}

func TestEvents(t *testing.T) {
	req := require.New(t)

	req.Equal(ConnectionStatus{Type: EventStatus, Peer: "bob", Connected: true, Note: "hi"}, NewConnectionStatus("bob", true, "hi"))
	req.Equal(ChatMessage{Type: EventMessage, Sender: "bob", Text: "yo"}, NewChatMessage("bob", "yo"))
	req.Equal(EventClearList, NewClearList().Type)
}
