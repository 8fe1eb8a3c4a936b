package keymap

import (
	"errors"
	"fmt"
)

// Compile errors
var (
	ErrEmptyBinding  = errors.New("empty keybinding")
	ErrTooManyChords = errors.New("too many distinct chords")
	ErrUnknownAction = errors.New("unknown action")
)

// Binding represents a single keys-to-action mapping.
type Binding struct {
	// Keys is the keybinding text, e.g. "Ctrl-Space Ctrl-q".
	Keys string

	// Action is performed when Keys has just been typed.
	Action Action

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys string, action Action) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// BindingError reports which binding failed to compile.
type BindingError struct {
	// Index is the position of the binding in the compiled list.
	Index int
	// Keys is the binding text as written.
	Keys string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %d (%q): %v", e.Index, e.Keys, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindingError) Unwrap() error {
	return e.Err
}
