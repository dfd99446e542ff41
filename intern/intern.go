// Package intern implements a perfect (collision-free) string interner used
// to turn line content into dense integer identifiers for the line-level
// diff stage. Unlike a hashing scheme, two distinct strings can never share
// an id: equality of ids is used as the only equality primitive by the
// diff algorithms downstream, so a collision would silently produce a wrong
// diff.
package intern

// Table maps strings to dense, stable integer ids in insertion order.
// A Table is not safe for concurrent use; each diff call constructs its
// own scoped Table.
type Table struct {
	ids  map[string]int32
	strs []string
}

// New returns an empty Table sized for n expected distinct strings.
func New(n int) *Table {
	return &Table{
		ids:  make(map[string]int32, n),
		strs: make([]string, 0, n),
	}
}

// GetOrCreate returns the id for s, assigning a new one if s has not been
// seen before. The new id is always len(Table) at the time of insertion, so
// ids are dense over [0, Size()).
func (t *Table) GetOrCreate(s string) int32 {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := int32(len(t.strs))
	t.ids[s] = id
	t.strs = append(t.strs, s)
	return id
}

// Size returns the number of distinct strings interned so far.
func (t *Table) Size() int {
	return len(t.strs)
}

// String returns the string that was assigned id, for debugging.
func (t *Table) String(id int32) string {
	return t.strs[id]
}
