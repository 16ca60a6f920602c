package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkeye/Chat/internal/domain"
)

type CommandName string

const (
	CmdCreateRoom CommandName = "create-room"
	CmdJoinRoom   CommandName = "join-room"
	CmdRoll       CommandName = "roll"
	CmdFlip       CommandName = "flip"
	CmdMute       CommandName = "mute"
	CmdUnmute     CommandName = "unmute"
)

// aliases keeps older clients that send the undashed names working.
var aliases = map[string]CommandName{
	"createroom": CmdCreateRoom,
	"joinroom":   CmdJoinRoom,
}

// Command is a parsed slash command. Name is empty for a bare trigger.
type Command struct {
	Name CommandName
	Args []string
}

// Arg returns the i-th positional argument if present.
func (c Command) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	return c.Args[i], true
}

// ParseCommand recognises any text containing the command trigger. The command
// is the segment between the first trigger and the next one; its first word,
// lower-cased, names the command and the remaining words are arguments.
func ParseCommand(text string) (Command, bool) {
	_, after, found := strings.Cut(text, domain.CommandTrigger)
	if !found {
		return Command{}, false
	}
	segment, _, _ := strings.Cut(after, domain.CommandTrigger)
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return Command{}, true
	}
	name := strings.ToLower(fields[0])
	cmd := Command{Name: CommandName(name), Args: fields[1:]}
	if canonical, ok := aliases[name]; ok {
		cmd.Name = canonical
	}
	return cmd, true
}

// processCommand reports whether text was a command. A failed command is
// still consumed so it never reaches the room.
func (r *Room) processCommand(sender ClientHandle, text string) bool {
	cmd, ok := ParseCommand(text)
	if !ok {
		return false
	}
	r.logger.Info().Str("client", sender.Name()).Str("command", string(cmd.Name)).Strs("args", cmd.Args).Msg("command")
	if err := r.execute(sender, cmd); err != nil {
		r.logger.Warn().Err(err).Str("client", sender.Name()).Str("text", text).Msg("command not executed")
	}
	return true
}

func (r *Room) execute(sender ClientHandle, cmd Command) error {
	switch cmd.Name {
	case CmdCreateRoom:
		name, ok := cmd.Arg(0)
		if !ok {
			return fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgument)
		}
		if !r.registry.CreateRoom(domain.RoomName(name)) {
			return fmt.Errorf("%s %q: %w", cmd.Name, name, ErrRoomExists)
		}
		return r.moveTo(sender, domain.RoomName(name))

	case CmdJoinRoom:
		name, ok := cmd.Arg(0)
		if !ok {
			return fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgument)
		}
		return r.moveTo(sender, domain.RoomName(name))

	case CmdRoll:
		raw, ok := cmd.Arg(0)
		if !ok {
			return fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgument)
		}
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s %q: %w", cmd.Name, raw, ErrInvalidRollBound)
		}
		if limit <= 0 {
			return fmt.Errorf("%s %d: %w", cmd.Name, limit, ErrInvalidRollBound)
		}
		r.reply(sender, fmt.Sprintf("rolled %d out of %d", r.dice.IntN(limit), limit))
		return nil

	case CmdFlip:
		side := "heads"
		if r.dice.IntN(2) == 1 {
			side = "tails"
		}
		r.reply(sender, fmt.Sprintf("flipped a coin. It landed on %s!", side))
		return nil

	case CmdMute:
		name, ok := cmd.Arg(0)
		if !ok {
			return fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgument)
		}
		r.mu.Lock()
		r.mutes.Mute(sender.Name(), name)
		muted := r.mutes.Muted(sender.Name())
		r.mu.Unlock()
		r.logger.Debug().Str("client", sender.Name()).Strs("muted", muted).Msg("mute list changed")
		return nil

	case CmdUnmute:
		name, ok := cmd.Arg(0)
		if !ok {
			return fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgument)
		}
		r.mu.Lock()
		r.mutes.Unmute(sender.Name(), name)
		muted := r.mutes.Muted(sender.Name())
		r.mu.Unlock()
		r.logger.Debug().Str("client", sender.Name()).Strs("muted", muted).Msg("mute list changed")
		return nil
	}
	return fmt.Errorf("%q: %w", cmd.Name, ErrUnknownCommand)
}

// moveTo takes c out of its current room and into the named one. If the target
// is torn down before c gets in, c lands in the lobby instead.
func (r *Room) moveTo(c ClientHandle, name domain.RoomName) error {
	target, ok := r.registry.Room(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrRoomNotFound)
	}
	current := c.CurrentRoom()
	if current == target {
		return nil
	}
	if current != nil {
		current.Leave(c)
	}
	switch target.joinFrom(c, current) {
	case joined:
		return nil
	case joinMoved:
		return fmt.Errorf("%q: %w", name, ErrClientMoved)
	case joinDropped:
		return fmt.Errorf("%q: %w", name, ErrSendFailed)
	case joinClosed:
	}
	if lobby := r.registry.Lobby(); lobby != nil {
		lobby.joinFrom(c, current)
	}
	return fmt.Errorf("%q: %w", name, ErrRoomClosed)
}
