package app_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/testhelpers"
)

func TestRoomManager_LobbyExists(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()

	lobby, ok := m.Room("lobby")
	req.True(ok)
	req.Same(m.Lobby(), lobby)
	req.Equal(domain.LobbyName, lobby.Name())
	req.Equal([]core.RoomInfo{{Name: domain.LobbyName, MemberCount: 0}}, m.List())
}

func TestRoomManager_CreateRoom(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()

	req.True(m.CreateRoom("dev"))
	req.False(m.CreateRoom("dev"))
	req.False(m.CreateRoom("DEV"))
	req.False(m.CreateRoom("lobby"))
	req.False(m.CreateRoom(""))
	req.False(m.CreateRoom("two words"))

	dev, ok := m.Room("Dev")
	req.True(ok)
	req.Equal(domain.RoomName("dev"), dev.Name())
}

func TestRoomManager_CreateAndJoinCommands(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()
	alice := testhelpers.NewFakeClient("alice")
	bob := testhelpers.NewFakeClient("bob")
	m.Lobby().Join(alice)
	m.Lobby().Join(bob)

	// When alice creates foo
	alice.CurrentRoom().SendMessage(alice, "/create-room foo")

	// Then she moved there and the lobby saw her leave
	foo, ok := m.Room("foo")
	req.True(ok)
	req.Same(foo, alice.CurrentRoom())
	req.Equal([]string{"bob"}, m.Lobby().MembersSnapshot())
	req.Contains(bob.Statuses(), domain.NewConnectionStatus("alice", false, "left the room Lobby"))

	// When bob joins foo through the alias
	bob.Reset()
	bob.CurrentRoom().SendMessage(bob, "/joinroom foo")

	req.Equal([]string{"alice", "bob"}, foo.MembersSnapshot())
	req.Equal([]domain.ConnectionStatus{
		domain.NewConnectionStatus("alice", true, ""),
		domain.NewConnectionStatus("bob", true, "joined the room foo"),
	}, bob.Statuses())

	// When both go back to the lobby, foo disappears
	alice.CurrentRoom().SendMessage(alice, "/join-room Lobby")
	bob.CurrentRoom().SendMessage(bob, "/join-room lobby")

	req.True(foo.Closed())
	_, ok = m.Room("foo")
	req.False(ok)
	req.Equal([]core.RoomInfo{{Name: domain.LobbyName, MemberCount: 2}}, m.List())

	// And the name is free again
	req.True(m.CreateRoom("foo"))
	again, _ := m.Room("foo")
	req.NotSame(foo, again)
}

func TestRoomManager_CreateRoomCommand_Duplicate(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()
	req.True(m.CreateRoom("dev"))
	alice := testhelpers.NewFakeClient("alice")
	m.Lobby().Join(alice)

	m.Lobby().SendMessage(alice, "/create-room dev")

	req.Same(m.Lobby(), alice.CurrentRoom())
}

func TestRoomManager_Forget_IgnoresStaleAndLobby(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()
	req.True(m.CreateRoom("dev"))
	dev, _ := m.Room("dev")

	stale := core.NewRoom(domain.Room{ID: "other", Name: "dev"}, m)
	m.Forget(stale)
	m.Forget(nil)
	m.Forget(m.Lobby())

	got, ok := m.Room("dev")
	req.True(ok)
	req.Same(dev, got)
	_, ok = m.Room(domain.LobbyName)
	req.True(ok)
}

func TestRoomManager_CloseRoom(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()
	req.True(m.CreateRoom("dev"))
	dev, _ := m.Room("dev")
	alice := testhelpers.NewFakeClient("alice")
	bob := testhelpers.NewFakeClient("bob")
	dev.Join(alice)
	dev.Join(bob)

	req.False(m.CloseRoom(domain.LobbyName))
	req.False(m.CloseRoom("missing"))
	req.True(m.CloseRoom("DEV"))

	req.True(dev.Closed())
	req.Same(m.Lobby(), alice.CurrentRoom())
	req.Same(m.Lobby(), bob.CurrentRoom())
	req.Equal([]string{"alice", "bob"}, m.Lobby().MembersSnapshot())
	_, ok := m.Room("dev")
	req.False(ok)
	req.False(m.CloseRoom("dev"))
}

func TestRoomManager_List_SortedWithCounts(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager()
	req.True(m.CreateRoom("zeta"))
	req.True(m.CreateRoom("alpha"))
	zeta, _ := m.Room("zeta")
	zeta.Join(testhelpers.NewFakeClient("alice"))

	req.Equal([]core.RoomInfo{
		{Name: "alpha", MemberCount: 0},
		{Name: domain.LobbyName, MemberCount: 0},
		{Name: "zeta", MemberCount: 1},
	}, m.List())
}

func TestRoomManager_DiceOption(t *testing.T) {
	req := require.New(t)
	m := app.NewRoomManager(core.WithDice(testhelpers.FixedDice(4)))
	alice := testhelpers.NewFakeClient("alice")
	m.Lobby().Join(alice)

	m.Lobby().SendMessage(alice, "/roll 10")

	req.Equal([]string{"rolled 4 out of 10"}, alice.Texts())
}

func TestRoomManager_CloseRacingJoinRoom_LeavesEachClientInOneRoom(t *testing.T) {
	req := require.New(t)
	for round := 0; round < 50; round++ {
		m := app.NewRoomManager()
		req.True(m.CreateRoom("dev"))
		req.True(m.CreateRoom("other"))
		dev, _ := m.Room("dev")
		other, _ := m.Room("other")
		other.Join(testhelpers.NewFakeClient("keeper"))

		clients := make([]*testhelpers.FakeClient, 8)
		for i := range clients {
			clients[i] = testhelpers.NewFakeClient(fmt.Sprintf("user%d", i))
			dev.Join(clients[i])
		}

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.CloseRoom("dev")
		}()
		for _, c := range clients {
			c := c
			wg.Add(1)
			go func() {
				defer wg.Done()
				if room := c.CurrentRoom(); room != nil {
					room.SendMessage(c, "/join-room other")
				}
			}()
		}
		wg.Wait()

		for _, c := range clients {
			inLobby, inOther := m.Lobby().Has(c), other.Has(c)
			req.True(inLobby != inOther, "round %d: %s in lobby=%v other=%v", round, c.Name(), inLobby, inOther)
			req.True(c.CurrentRoom().Has(c), "round %d: %s current room out of sync", round, c.Name())
		}
	}
}
