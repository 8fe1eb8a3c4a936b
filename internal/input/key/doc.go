// Package key parses keybinding descriptions into chords and sequences.
//
// A keybinding is written in a small language:
//
//	sequence ::= chord | chord chord
//	chord    ::= key | key '-' chord
//	key      ::= 'Ctrl' | 'Space' | <single lowercase letter or digit>
//
// Chords bind tighter than sequences. A chord is a set of keys pressed
// together, joined by '-'. A sequence is a list of chords pressed one after
// another, separated by whitespace:
//
//	"a"                  - the a key
//	"Ctrl-a"             - Ctrl and a together
//	"Ctrl-Space Ctrl-d"  - Ctrl+Space, then Ctrl+d
//
// Only two chord shapes are valid: a bare symbol, or Ctrl followed by a
// symbol. Every valid chord produces exactly one byte on a terminal, which
// KeyCode resolves.
//
// # Pipeline
//
// Tokenize turns text into Key and Dash tokens, Parse groups tokens into a
// Sequence, and Chord.Validate / Chord.KeyCode check and resolve each chord.
// ParseSequence runs the first two steps together.
package key
