package keymap

// DefaultDetachKeys is the binding that detaches unless configured otherwise.
const DefaultDetachKeys = "Ctrl-Space Ctrl-q"

// DefaultBindings returns the bindings used when none are configured.
func DefaultBindings() []Binding {
	return []Binding{
		NewBinding(DefaultDetachKeys, ActionDetach).
			WithDescription("Detach from the current session"),
	}
}
