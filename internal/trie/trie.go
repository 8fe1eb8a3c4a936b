// Package trie provides a generic prefix automaton over a symbol alphabet.
//
// Nodes live in a single growable arena and refer to each other by index,
// so inserting never moves or removes a node. Node 0 is the root. Each node
// may carry a terminal value and still have children.
//
// Matching is driven one symbol at a time through a Cursor:
//
//	t := trie.NewSparse[rune, string]()
//	t.Insert([]rune("gg"), "top")
//
//	c := trie.Start
//	c = t.Advance(c, 'g') // partial match
//	c = t.Advance(c, 'g') // complete match
//	v, ok := t.Get(c)     // "top", true
//
// The symbol -> child lookup is delegated to a Table. Byte-sized alphabets
// use DenseTable for constant time array lookups; everything else uses
// SparseTable.
package trie

// Trie is an arena-backed prefix automaton mapping symbol sequences to values.
type Trie[S any, V any] struct {
	nodes    []node[S, V]
	newTable func() Table[S]
}

type node[S any, V any] struct {
	value    V
	hasValue bool
	tab      Table[S]
}

// New creates an empty trie whose nodes use tables built by newTable.
func New[S any, V any](newTable func() Table[S]) *Trie[S, V] {
	t := &Trie[S, V]{newTable: newTable}
	t.nodes = append(t.nodes, node[S, V]{tab: newTable()})
	return t
}

// NewDense creates a trie over a byte-sized alphabet backed by DenseTable.
func NewDense[S ~uint8, V any]() *Trie[S, V] {
	return New[S, V](func() Table[S] { return new(DenseTable[S]) })
}

// NewSparse creates a trie over any comparable alphabet backed by SparseTable.
func NewSparse[S comparable, V any]() *Trie[S, V] {
	return New[S, V](func() Table[S] { return make(SparseTable[S]) })
}

// Insert stores value at the end of seq, creating nodes as needed.
// A value already stored for the same path is overwritten.
func (t *Trie[S, V]) Insert(seq []S, value V) {
	cur := 0
	for _, sym := range seq {
		next, ok := t.nodes[cur].tab.Get(sym)
		if !ok {
			next = len(t.nodes)
			t.nodes = append(t.nodes, node[S, V]{tab: t.newTable()})
			t.nodes[cur].tab.Set(sym, next)
		}
		cur = next
	}
	t.nodes[cur].value = value
	t.nodes[cur].hasValue = true
}

// Advance moves c forward by one symbol.
func (t *Trie[S, V]) Advance(c Cursor, sym S) Cursor {
	var from int
	switch c.state {
	case stateStart:
		from = 0
	case stateMatch:
		from = c.node
	default:
		return NoMatch
	}

	next, ok := t.nodes[from].tab.Get(sym)
	if !ok {
		return NoMatch
	}
	return Cursor{
		state:   stateMatch,
		node:    next,
		partial: !t.nodes[next].hasValue,
	}
}

// Get returns the value stored at the cursor's node. Only Match cursors
// can carry a value.
func (t *Trie[S, V]) Get(c Cursor) (V, bool) {
	if c.state != stateMatch {
		var zero V
		return zero, false
	}
	n := &t.nodes[c.node]
	return n.value, n.hasValue
}

// Contains reports whether seq was inserted. The empty sequence is
// contained only if a value was inserted for it.
func (t *Trie[S, V]) Contains(seq []S) bool {
	c := Start
	for _, sym := range seq {
		c = t.Advance(c, sym)
		if c.IsNoMatch() {
			return false
		}
	}
	if c.IsStart() {
		return t.nodes[0].hasValue
	}
	return !c.partial
}

// Len returns the number of nodes, including the root.
func (t *Trie[S, V]) Len() int {
	return len(t.nodes)
}
