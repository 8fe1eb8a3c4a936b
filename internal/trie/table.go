package trie

// Table associates symbols with child node indexes.
type Table[S any] interface {
	// Get returns the child index for sym.
	Get(sym S) (int, bool)
	// Set records idx as the child for sym.
	Set(sym S, idx int)
}

// DenseTable is a fixed 256-slot table indexed directly by the symbol.
// The root is never anybody's child, so index 0 marks an empty slot.
type DenseTable[S ~uint8] [256]int32

// Get implements Table.
func (d *DenseTable[S]) Get(sym S) (int, bool) {
	idx := d[uint8(sym)]
	return int(idx), idx != 0
}

// Set implements Table.
func (d *DenseTable[S]) Set(sym S, idx int) {
	d[uint8(sym)] = int32(idx)
}

// SparseTable is a map-backed table for large or sparse alphabets.
type SparseTable[S comparable] map[S]int

// Get implements Table.
func (s SparseTable[S]) Get(sym S) (int, bool) {
	idx, ok := s[sym]
	return idx, ok
}

// Set implements Table.
func (s SparseTable[S]) Set(sym S, idx int) {
	s[sym] = idx
}
