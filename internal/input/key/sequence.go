package key

import (
	"slices"
	"strings"
)

// Chord is a list of key labels held down together, in the order written.
type Chord []string

// NewChord creates a chord from labels.
func NewChord(labels ...string) Chord {
	return Chord(labels)
}

// Len returns the number of keys in the chord.
func (c Chord) Len() int {
	return len(c)
}

// Equal reports whether two chords have the same labels in the same order.
func (c Chord) Equal(other Chord) bool {
	return slices.Equal(c, other)
}

// Key returns a string usable as a map key. Two chords have the same Key
// exactly when they are Equal.
func (c Chord) Key() string {
	return strings.Join(c, "\x00")
}

// String returns the chord in binding syntax, e.g. "Ctrl-a".
func (c Chord) String() string {
	return strings.Join(c, "-")
}

// Sequence is a list of chords pressed one after another.
type Sequence struct {
	Chords []Chord
}

// NewSequence creates a sequence from chords.
func NewSequence(chords ...Chord) Sequence {
	return Sequence{Chords: chords}
}

// Len returns the number of chords in the sequence.
func (s Sequence) Len() int {
	return len(s.Chords)
}

// IsEmpty returns true if the sequence has no chords.
func (s Sequence) IsEmpty() bool {
	return len(s.Chords) == 0
}

// Equal reports whether two sequences hold equal chords in the same order.
func (s Sequence) Equal(other Sequence) bool {
	return slices.EqualFunc(s.Chords, other.Chords, Chord.Equal)
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix.Chords) > len(s.Chords) {
		return false
	}
	return slices.EqualFunc(s.Chords[:len(prefix.Chords)], prefix.Chords, Chord.Equal)
}

// Validate checks every chord in the sequence.
func (s Sequence) Validate() error {
	for _, c := range s.Chords {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// KeyCodes resolves each chord to the byte it produces.
func (s Sequence) KeyCodes() ([]byte, error) {
	codes := make([]byte, 0, len(s.Chords))
	for _, c := range s.Chords {
		code, err := c.KeyCode()
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// String returns the canonical binding text, e.g. "Ctrl-Space Ctrl-d".
func (s Sequence) String() string {
	parts := make([]string, len(s.Chords))
	for i, c := range s.Chords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
