package session

import "github.com/dshills/keyhold/internal/input/keymap"

// Scanner finds keybindings in client input.
//
// It follows the registry: when new bindings are loaded the matcher is
// rebuilt before the next chunk and any partial match is discarded.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	registry   *keymap.Registry
	matcher    *keymap.Matcher
	generation uint64
}

// NewScanner returns a scanner over the registry's current bindings.
func NewScanner(registry *keymap.Registry) *Scanner {
	s := &Scanner{registry: registry}
	s.refresh()
	return s
}

func (s *Scanner) refresh() {
	bindings, gen := s.registry.Current()
	if s.matcher != nil && gen == s.generation {
		return
	}
	s.matcher = bindings.NewMatcher()
	s.generation = gen
}

// Scan feeds chunk to the matcher. It returns how many leading bytes of
// chunk should be forwarded. When a binding fires, n is the index of the
// byte that completed it; that byte and the rest of the chunk are
// dropped.
func (s *Scanner) Scan(chunk []byte) (n int, action keymap.Action, fired bool) {
	s.refresh()
	for i, b := range chunk {
		if action, ok := s.matcher.Transition(b); ok {
			return i, action, true
		}
	}
	return len(chunk), keymap.ActionNone, false
}

// Reset discards any partial match.
func (s *Scanner) Reset() {
	s.matcher.Reset()
}

// Pending reports whether the input so far is a prefix of a binding.
func (s *Scanner) Pending() bool {
	return s.matcher.Pending()
}
