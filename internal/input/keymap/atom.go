package keymap

import (
	"fmt"

	"github.com/dshills/keyhold/internal/input/key"
)

// MaxChords is the number of distinct chords one compiled table can hold.
const MaxChords = 255

// chordAtom stands in for a distinct chord so the sequence matcher only
// ever compares small integers.
type chordAtom uint8

// atomTable hands out chord atoms in first-seen order. Chords that send the
// same byte (Ctrl-Space and Ctrl-2) are indistinguishable on the
// wire and share an atom.
type atomTable struct {
	byChord map[string]chordAtom
	byCode  map[byte]chordAtom
}

func newAtomTable() *atomTable {
	return &atomTable{
		byChord: make(map[string]chordAtom),
		byCode:  make(map[byte]chordAtom),
	}
}

// intern returns the atom for c, allocating one on first sight.
func (t *atomTable) intern(c key.Chord, code byte) (chordAtom, error) {
	k := c.Key()
	if atom, ok := t.byChord[k]; ok {
		return atom, nil
	}
	if atom, ok := t.byCode[code]; ok {
		t.byChord[k] = atom
		return atom, nil
	}
	if len(t.byCode) >= MaxChords {
		return 0, fmt.Errorf("%w: at most %d are supported", ErrTooManyChords, MaxChords)
	}
	atom := chordAtom(len(t.byCode))
	t.byChord[k] = atom
	t.byCode[code] = atom
	return atom, nil
}

// len returns the number of atoms handed out.
func (t *atomTable) len() int {
	return len(t.byCode)
}
