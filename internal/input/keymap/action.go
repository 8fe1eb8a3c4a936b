package keymap

import (
	"fmt"
	"strings"
)

// Action is an effect a completed keybinding asks the caller to perform.
type Action uint8

const (
	// ActionNone is the zero value; it is never bound.
	ActionNone Action = iota

	// ActionDetach detaches the client from the current session.
	ActionDetach
)

var actionNames = map[Action]string{
	ActionDetach: "Detach",
}

// Actions returns every bindable action.
func Actions() []Action {
	return []Action{ActionDetach}
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	if a == ActionNone {
		return "None"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction parses an action name. Matching ignores case.
func ParseAction(name string) (Action, error) {
	name = strings.TrimSpace(name)
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if _, ok := actionNames[a]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
