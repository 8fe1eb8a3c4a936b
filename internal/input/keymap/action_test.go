package keymap

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"Detach", ActionDetach, false},
		{"detach", ActionDetach, false},
		{" DETACH ", ActionDetach, false},
		{"None", ActionNone, true},
		{"", ActionNone, true},
		{"quit", ActionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownAction) {
				t.Errorf("error should wrap ErrUnknownAction, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if got := ActionDetach.String(); got != "Detach" {
		t.Errorf("ActionDetach.String() = %q", got)
	}
	if got := ActionNone.String(); got != "None" {
		t.Errorf("ActionNone.String() = %q", got)
	}
	if got := Action(42).String(); got != "Action(42)" {
		t.Errorf("Action(42).String() = %q", got)
	}
}

func TestActionText(t *testing.T) {
	text, err := ActionDetach.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	var a Action
	if err := a.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error = %v", text, err)
	}
	if a != ActionDetach {
		t.Errorf("round trip = %v, want Detach", a)
	}

	if _, err := ActionNone.MarshalText(); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ActionNone.MarshalText() error = %v, want ErrUnknownAction", err)
	}
	if err := a.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
	if a != ActionDetach {
		t.Error("failed UnmarshalText should leave the value unchanged")
	}
}

func TestActionsAreBindable(t *testing.T) {
	for _, a := range Actions() {
		if _, err := a.MarshalText(); err != nil {
			t.Errorf("%v is listed but cannot be marshaled: %v", a, err)
		}
	}
}
