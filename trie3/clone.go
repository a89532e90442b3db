package trie3

// Clone returns an independently-owned deep copy of t: a fresh index array,
// a fresh data array, and a copy of every scalar field. Mutating the result
// of reconstructing either trie (there is no in-place mutation API, but a
// caller could always Deserialize a new trie) never affects the other.
func (t *Trie) Clone() *Trie {
	c := &Trie{
		Name:             t.Name,
		index2NullOffset: t.index2NullOffset,
		dataNullOffset:   t.dataNullOffset,
		highStart:        t.highStart,
		highValue:        t.highValue,
		errorValue:       t.errorValue,
		initialValue:     t.initialValue,
	}
	c.index = make([]uint16, len(t.index))
	copy(c.index, t.index)

	if t.data32 != nil {
		c.data32 = make([]uint32, len(t.data32))
		copy(c.data32, t.data32)
	} else {
		c.data16 = make([]uint16, len(t.data16))
		copy(c.data16, t.data16)
	}
	return c
}
