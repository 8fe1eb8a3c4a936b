package keymap

import (
	"fmt"

	"github.com/dshills/keyhold/internal/input/key"
	"github.com/dshills/keyhold/internal/trie"
)

// Bindings is a compiled, immutable keybinding table.
type Bindings struct {
	// chords maps the raw byte of every bound chord to its atom. Input is
	// scanned as bytes because it need not be valid UTF-8.
	chords *trie.Trie[byte, chordAtom]

	// sequences maps atom sequences to the action they trigger.
	sequences *trie.Trie[chordAtom, Action]

	entries []Entry
	atoms   int
}

// Entry describes one compiled binding.
type Entry struct {
	// Keys is the binding text as written.
	Keys string
	// Sequence is the parsed binding.
	Sequence key.Sequence
	// Codes are the bytes a terminal sends for the sequence, one per chord.
	Codes []byte
	// Action is the bound action.
	Action Action
	// Description is copied from the binding.
	Description string
}

// Compile parses and validates bindings and builds the matching tables.
// Identical chords used by different bindings share one atom. Compile fails
// on the first invalid binding and returns no table in that case.
func Compile(bindings []Binding) (*Bindings, error) {
	b := &Bindings{
		chords:    trie.NewDense[byte, chordAtom](),
		sequences: trie.NewDense[chordAtom, Action](),
		entries:   make([]Entry, 0, len(bindings)),
	}
	atoms := newAtomTable()

	for i, binding := range bindings {
		entry, err := b.add(atoms, binding)
		if err != nil {
			return nil, &BindingError{Index: i, Keys: binding.Keys, Err: err}
		}
		b.entries = append(b.entries, entry)
	}

	b.atoms = atoms.len()
	return b, nil
}

func (b *Bindings) add(atoms *atomTable, binding Binding) (Entry, error) {
	if _, ok := actionNames[binding.Action]; !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAction, binding.Action)
	}

	tokens, err := key.Tokenize(binding.Keys)
	if err != nil {
		return Entry{}, fmt.Errorf("tokenizing keybinding: %w", err)
	}
	seq, err := key.Parse(tokens)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing keybinding: %w", err)
	}
	if seq.IsEmpty() {
		return Entry{}, ErrEmptyBinding
	}

	path := make([]chordAtom, 0, seq.Len())
	codes := make([]byte, 0, seq.Len())
	for _, chord := range seq.Chords {
		// KeyCode validates the chord as well.
		code, err := chord.KeyCode()
		if err != nil {
			return Entry{}, err
		}
		atom, err := atoms.intern(chord, code)
		if err != nil {
			return Entry{}, err
		}

		// A code always maps to the same atom, so inserting the same
		// path twice is harmless.
		b.chords.Insert([]byte{code}, atom)
		path = append(path, atom)
		codes = append(codes, code)
	}
	b.sequences.Insert(path, binding.Action)

	return Entry{
		Keys:        binding.Keys,
		Sequence:    seq,
		Codes:       codes,
		Action:      binding.Action,
		Description: binding.Description,
	}, nil
}

// Entries returns the compiled bindings in the order given to Compile.
func (b *Bindings) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of compiled bindings.
func (b *Bindings) Len() int {
	return len(b.entries)
}

// ChordCount returns the number of distinct chords across all bindings.
func (b *Bindings) ChordCount() int {
	return b.atoms
}

// NewMatcher returns a matcher positioned at the start of both tables.
func (b *Bindings) NewMatcher() *Matcher {
	return &Matcher{
		bindings:        b,
		chordsCursor:    trie.Start,
		sequencesCursor: trie.Start,
	}
}
