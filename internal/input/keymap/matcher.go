package keymap

import "github.com/dshills/keyhold/internal/trie"

// Matcher scans an input byte stream against compiled bindings.
// It is not safe for concurrent use.
type Matcher struct {
	bindings *Bindings

	// chordsCursor is the match state in the chords trie.
	chordsCursor trie.Cursor

	// sequencesCursor is the match state in the sequences trie.
	sequencesCursor trie.Cursor
}

// NewMatcher compiles bindings and returns a matcher for them.
func NewMatcher(bindings []Binding) (*Matcher, error) {
	b, err := Compile(bindings)
	if err != nil {
		return nil, err
	}
	return b.NewMatcher(), nil
}

// Bindings returns the table the matcher scans against.
func (m *Matcher) Bindings() *Bindings {
	return m.bindings
}

// Transition consumes the next input byte. It returns the bound action
// when b completes a binding.
func (m *Matcher) Transition(b byte) (Action, bool) {
	m.chordsCursor = m.bindings.chords.Advance(m.chordsCursor, b)

	atom, ok := m.bindings.chords.Get(m.chordsCursor)
	if !ok {
		// Keep waiting while a chord is still in progress, otherwise
		// everything typed so far is abandoned.
		if m.chordsCursor.IsNoMatch() {
			m.Reset()
		}
		return ActionNone, false
	}
	m.chordsCursor = trie.Start

	m.sequencesCursor = m.bindings.sequences.Advance(m.sequencesCursor, atom)
	switch {
	case m.sequencesCursor.IsPartial():
		return ActionNone, false
	case m.sequencesCursor.IsComplete():
		action, _ := m.bindings.sequences.Get(m.sequencesCursor)
		m.sequencesCursor = trie.Start
		return action, true
	default:
		m.sequencesCursor = trie.Start
		return ActionNone, false
	}
}

// Reset discards any partial match.
func (m *Matcher) Reset() {
	m.chordsCursor = trie.Start
	m.sequencesCursor = trie.Start
}

// Pending reports whether a chord or sequence is partially matched.
func (m *Matcher) Pending() bool {
	return m.chordsCursor.IsMatch() || m.sequencesCursor.IsMatch()
}
