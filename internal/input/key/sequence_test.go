package key

import (
	"bytes"
	"errors"
	"testing"
)

func TestSequenceString(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"Ctrl-Space Ctrl-d", "Ctrl-Space Ctrl-d"},
		{"  Ctrl -Space   Ctrl-  d ", "Ctrl-Space Ctrl-d"},
		{"ab", "a b"},
		{"", ""},
	}

	for _, tt := range tests {
		seq := MustParseSequence(tt.src)
		if got := seq.String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestSequenceHasPrefix(t *testing.T) {
	seq := MustParseSequence("Ctrl-a b c")

	tests := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"Ctrl-a", true},
		{"Ctrl-a b", true},
		{"Ctrl-a b c", true},
		{"Ctrl-a b c d", false},
		{"b", false},
		{"Ctrl-b", false},
	}

	for _, tt := range tests {
		if got := seq.HasPrefix(MustParseSequence(tt.prefix)); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestSequenceKeyCodes(t *testing.T) {
	codes, err := MustParseSequence("Ctrl-Space Ctrl-d a Space").KeyCodes()
	if err != nil {
		t.Fatalf("KeyCodes() error = %v", err)
	}
	if want := []byte{0, 4, 'a', ' '}; !bytes.Equal(codes, want) {
		t.Errorf("KeyCodes() = %v, want %v", codes, want)
	}

	_, err = MustParseSequence("a Ctrl-1").KeyCodes()
	if !errors.Is(err, ErrUnknownKeyCode) {
		t.Errorf("KeyCodes() error = %v, want ErrUnknownKeyCode", err)
	}
}

func TestSequenceValidate(t *testing.T) {
	if err := MustParseSequence("Ctrl-a b").Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := MustParseSequence("a Ctrl").Validate(); !errors.Is(err, ErrInvalidChord) {
		t.Errorf("Validate() error = %v, want ErrInvalidChord", err)
	}
}

func TestSequenceEqual(t *testing.T) {
	a := MustParseSequence("Ctrl-a b")
	if !a.Equal(MustParseSequence("Ctrl-a b")) {
		t.Error("identical sequences should be equal")
	}
	if a.Equal(MustParseSequence("b Ctrl-a")) {
		t.Error("reordered sequences should differ")
	}
	if a.IsEmpty() || !NewSequence().IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}
