package key

import (
	"errors"
	"fmt"
)

// Parse errors
var (
	ErrUnexpectedChar = errors.New("unexpected char")
	ErrUnexpectedDash = errors.New("unexpected dash")
	ErrInvalidChord   = errors.New("invalid chord")
	ErrUnknownKeyCode = errors.New("unknown key code for chord")
)

// Parse groups tokens into a sequence of chords.
//
// A dash glues the next key onto the current chord; two adjacent keys
// start a new chord. A leading dash or two dashes in a row are rejected.
// Parse does not check chord shapes; see Chord.Validate.
func Parse(tokens []Token) (Sequence, error) {
	var (
		chords []Chord
		keys   []string
	)
	sawDash := true

	for i, tok := range tokens {
		switch tok.Kind {
		case TokenKey:
			if sawDash {
				keys = append(keys, tok.Text)
				sawDash = false
				continue
			}
			chords = append(chords, Chord(keys))
			keys = []string{tok.Text}
		case TokenDash:
			if sawDash {
				return Sequence{}, fmt.Errorf("%w at token %d", ErrUnexpectedDash, i)
			}
			sawDash = true
		}
	}

	if len(keys) > 0 {
		chords = append(chords, Chord(keys))
	}

	return Sequence{Chords: chords}, nil
}

// ParseSequence tokenizes and parses src.
func ParseSequence(src string) (Sequence, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Sequence{}, fmt.Errorf("tokenizing %q: %w", src, err)
	}
	seq, err := Parse(tokens)
	if err != nil {
		return Sequence{}, fmt.Errorf("parsing %q: %w", src, err)
	}
	return seq, nil
}

// MustParseSequence parses src and panics on error.
// Use only for known-valid bindings in initialization code.
func MustParseSequence(src string) Sequence {
	seq, err := ParseSequence(src)
	if err != nil {
		panic("invalid keybinding: " + src + ": " + err.Error())
	}
	return seq
}
