package player

import "strings"

// Command is one discrete driver input
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	Accelerate
	Brake
)

// commandOrder is the order in which a tick applies its commands
var commandOrder = [...]Command{MoveLeft, MoveRight, Accelerate, Brake}

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Accelerate:
		return "accelerate"
	case Brake:
		return "brake"
	}
	return "unknown"
}

// CommandSet is the snapshot of commands sampled for one tick. A command is
// either present or not; pressing it twice between ticks counts once.
type CommandSet uint8

// NewCommandSet returns a set holding the given commands
func NewCommandSet(cmds ...Command) CommandSet {
	var set CommandSet
	for _, c := range cmds {
		set = set.With(c)
	}
	return set
}

// With returns the set with c added
func (s CommandSet) With(c Command) CommandSet {
	return s | 1<<c
}

// Has reports whether c is in the set
func (s CommandSet) Has(c Command) bool {
	return s&(1<<c) != 0
}

// Commands returns the commands in application order
func (s CommandSet) Commands() []Command {
	var out []Command
	for _, c := range commandOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CommandSet) String() string {
	names := make([]string, 0, len(commandOrder))
	for _, c := range s.Commands() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
