package key

// Reserved key labels.
const (
	// Ctrl is the only supported modifier.
	Ctrl = "Ctrl"

	// Space is the space bar.
	Space = "Space"
)

// keywords are the multi-character labels the lexer recognizes.
var keywords = []string{Ctrl, Space}

// IsKey reports whether label is a modifier or a symbol.
func IsKey(label string) bool {
	return IsCtrl(label) || IsSym(label)
}

// IsCtrl reports whether label is the Ctrl modifier.
func IsCtrl(label string) bool {
	return label == Ctrl
}

// IsSym reports whether label is a symbol: Space, or exactly one
// lowercase ASCII letter or digit.
func IsSym(label string) bool {
	if label == Space {
		return true
	}
	if len(label) != 1 {
		return false
	}
	return isSymChar(rune(label[0]))
}

func isSymChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
