package key

import "fmt"

// ChordError describes why a chord is not one of the supported shapes.
type ChordError struct {
	// Chord is the offending chord.
	Chord Chord
	// Reason is empty when the chord simply has the wrong length.
	Reason string
}

// Error implements the error interface.
func (e *ChordError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid chord: %s", e.Chord)
	}
	return fmt.Sprintf("invalid chord: %s: %s", e.Chord, e.Reason)
}

// Unwrap returns ErrInvalidChord.
func (e *ChordError) Unwrap() error {
	return ErrInvalidChord
}

// Validate checks that the chord is either a lone symbol or Ctrl followed
// by a symbol.
func (c Chord) Validate() error {
	for _, label := range c {
		if !IsKey(label) {
			return &ChordError{Chord: c, Reason: "invalid key"}
		}
	}

	switch len(c) {
	case 1:
		if IsCtrl(c[0]) {
			return &ChordError{Chord: c, Reason: "Ctrl is not a chord"}
		}
	case 2:
		if !IsCtrl(c[0]) {
			return &ChordError{Chord: c, Reason: "Ctrl is the only supported mod key"}
		}
		if IsCtrl(c[1]) {
			return &ChordError{Chord: c, Reason: "Ctrl cannot be repeated"}
		}
	default:
		return &ChordError{Chord: c}
	}
	return nil
}

// KeyCode returns the byte a terminal sends when the chord is pressed.
// The chord is validated first.
func (c Chord) KeyCode() (byte, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	if len(c) == 1 {
		if c[0] == Space {
			return ' ', nil
		}
		return c[0][0], nil
	}

	if code, ok := controlCodes[c.String()]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKeyCode, c)
}
