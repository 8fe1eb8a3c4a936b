// Package keymap compiles keybindings into a byte-stream matcher.
//
// Compilation is a separate, fallible phase. Compile lexes and parses every
// binding, validates each chord and resolves it to the byte a terminal
// sends for it, then builds two tries:
//
//   - the chords trie maps raw input bytes to chord atoms, small dense
//     integers standing in for distinct chords
//   - the sequences trie maps lists of chord atoms to actions
//
// The first error aborts compilation; there is no partially compiled table.
//
// Atoms are assigned per key code rather than per chord spelling. Chords
// that send the same byte, such as Ctrl-Space and Ctrl-2 (both NUL), share
// one atom, so "Ctrl-Space x" and "Ctrl-2 y" can both fire. Keying atoms
// by spelling alone would let the later alias overwrite the earlier one in
// the chords trie and silently disable its sequences.
//
// Matching is infallible. A Matcher holds one cursor into each trie and
// consumes input a byte at a time:
//
//	bindings, err := keymap.Compile([]keymap.Binding{
//	    keymap.NewBinding("Ctrl-Space Ctrl-q", keymap.ActionDetach),
//	})
//	if err != nil {
//	    return err
//	}
//
//	m := bindings.NewMatcher()
//	for _, b := range input {
//	    if action, ok := m.Transition(b); ok {
//	        // perform action
//	    }
//	}
//
// Compiled Bindings are immutable and may be shared between goroutines.
// A Matcher is not safe for concurrent use; give each input stream its own.
//
// # Prefix Ambiguity
//
// When one binding is a strict prefix of another, the shorter binding fires
// as soon as it completes and matching starts over, so the longer binding
// can never fire.
package keymap
