package keymap

import (
	"fmt"
	"sync"
)

// Registry holds the active compiled bindings and lets them be replaced
// while matchers are running. Each successful Load bumps a generation
// counter so long-lived readers can notice the change and rebuild their
// matcher.
type Registry struct {
	mu sync.RWMutex

	bindings   *Bindings
	generation uint64
}

// NewRegistry creates a registry loaded with DefaultBindings.
func NewRegistry() *Registry {
	b, err := Compile(DefaultBindings())
	if err != nil {
		panic("keymap: default bindings do not compile: " + err.Error())
	}
	return &Registry{bindings: b, generation: 1}
}

// Load compiles bindings and makes them current. On error the previously
// loaded bindings stay in place.
func (r *Registry) Load(bindings []Binding) error {
	b, err := Compile(bindings)
	if err != nil {
		return fmt.Errorf("compiling keybindings: %w", err)
	}
	r.Store(b)
	return nil
}

// Store makes already compiled bindings current.
func (r *Registry) Store(b *Bindings) {
	if b == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings = b
	r.generation++
}

// Current returns the active bindings and their generation.
func (r *Registry) Current() (*Bindings, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bindings, r.generation
}

// Generation returns the number of successful loads, counting the
// defaults as the first.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// NewMatcher returns a matcher over the current bindings.
func (r *Registry) NewMatcher() *Matcher {
	b, _ := r.Current()
	return b.NewMatcher()
}
