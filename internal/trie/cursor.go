package trie

import "strconv"

type cursorState uint8

const (
	stateStart cursorState = iota
	stateMatch
	stateNoMatch
)

// Cursor is a position in a trie during an incremental match.
//
// A cursor is in one of three states: Start (nothing consumed yet),
// Match (positioned on a node, partial when that node has no value) or
// NoMatch (the last symbol had no transition). NoMatch is sticky until the
// caller starts over from Start.
type Cursor struct {
	state   cursorState
	node    int
	partial bool
}

var (
	// Start is the cursor every match begins from.
	Start = Cursor{state: stateStart}

	// NoMatch is the failed cursor.
	NoMatch = Cursor{state: stateNoMatch}
)

// IsStart reports whether no symbol has been consumed.
func (c Cursor) IsStart() bool {
	return c.state == stateStart
}

// IsMatch reports whether the cursor sits on a node, partial or complete.
func (c Cursor) IsMatch() bool {
	return c.state == stateMatch
}

// IsPartial reports whether the cursor sits on a node without a value.
func (c Cursor) IsPartial() bool {
	return c.state == stateMatch && c.partial
}

// IsComplete reports whether the cursor sits on a node carrying a value.
func (c Cursor) IsComplete() bool {
	return c.state == stateMatch && !c.partial
}

// IsNoMatch reports whether the match has failed.
func (c Cursor) IsNoMatch() bool {
	return c.state == stateNoMatch
}

// Node returns the arena index the cursor points at, or -1 when the
// cursor is not a Match.
func (c Cursor) Node() int {
	if c.state != stateMatch {
		return -1
	}
	return c.node
}

// String returns a short description for debugging.
func (c Cursor) String() string {
	switch c.state {
	case stateStart:
		return "Start"
	case stateNoMatch:
		return "NoMatch"
	}
	if c.partial {
		return "Partial(" + strconv.Itoa(c.node) + ")"
	}
	return "Match(" + strconv.Itoa(c.node) + ")"
}
