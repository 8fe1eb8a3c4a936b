package key

// ControlCode pairs a Ctrl chord, as written in a binding, with the byte a
// terminal emits for it.
type ControlCode struct {
	Chord string
	Code  byte
}

// ControlCodes lists every Ctrl chord with a known key code. Several chords
// alias the same byte, e.g. Ctrl-Space, Ctrl-@ and Ctrl-2 all send NUL.
var ControlCodes = [42]ControlCode{
	{"Ctrl-Space", 0},
	{"Ctrl-a", 1},
	{"Ctrl-b", 2},
	{"Ctrl-c", 3},
	{"Ctrl-d", 4},
	{"Ctrl-e", 5},
	{"Ctrl-f", 6},
	{"Ctrl-g", 7},
	{"Ctrl-h", 8},
	{"Ctrl-i", 9},
	{"Ctrl-j", 10},
	{"Ctrl-k", 11},
	{"Ctrl-l", 12},
	{"Ctrl-m", 13},
	{"Ctrl-n", 14},
	{"Ctrl-o", 15},
	{"Ctrl-p", 16},
	{"Ctrl-q", 17},
	{"Ctrl-r", 18},
	{"Ctrl-s", 19},
	{"Ctrl-t", 20},
	{"Ctrl-u", 21},
	{"Ctrl-v", 22},
	{"Ctrl-w", 23},
	{"Ctrl-x", 24},
	{"Ctrl-y", 25},
	{"Ctrl-z", 26},
	{"Ctrl-@", 0},
	{"Ctrl-2", 0},
	{"Ctrl-[", 27},
	{"Ctrl-3", 27},
	{"Ctrl-\\", 28},
	{"Ctrl-4", 28},
	{"Ctrl-]", 29},
	{"Ctrl-5", 29},
	{"Ctrl-^", 30},
	{"Ctrl-6", 30},
	{"Ctrl-_", 31},
	{"Ctrl-7", 31},
	{"Ctrl-?", 127},
	{"Ctrl-8", 127},
	{"Ctrl-0", 127},
}

var controlCodes = func() map[string]byte {
	m := make(map[string]byte, len(ControlCodes))
	for _, cc := range ControlCodes {
		m[cc.Chord] = cc.Code
	}
	return m
}()
