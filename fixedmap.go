package fixedmap

// entry is a single occupied slot: one key and its value, stored by value
// with no indirection.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// entries is the storage core shared by FixedMap and FixedSet.
//
// All pairs live in one block allocated at init and never reallocated. The
// occupied slots always form the prefix [0, len) of that block; slots past
// the prefix are zeroed and never read. Every operation is a plain linear
// scan over the prefix - there is no metadata, no hashing and no probe
// scheme to maintain, which is what makes the scan both sufficient and fast
// at the small sizes this container is meant for.
type entries[K comparable, V any] struct {
	pairs []entry[K, V]
}

func (e *entries[K, V]) init(capacity int) {
	e.pairs = make([]entry[K, V], 0, capacity)
}

// index returns the slot holding key, or -1. At most one slot can match,
// since swap never appends a key that is already present.
func (e *entries[K, V]) index(key K) int {
	for i := range e.pairs {
		if e.pairs[i].key == key {
			return i
		}
	}

	return -1
}

func (e *entries[K, V]) get(key K) (V, bool) {
	if i := e.index(key); i >= 0 {
		return e.pairs[i].value, true
	}

	var zero V
	return zero, false
}

func (e *entries[K, V]) ref(key K) *V {
	if i := e.index(key); i >= 0 {
		return &e.pairs[i].value
	}

	return nil
}

// swap is insert-or-overwrite. An existing key is overwritten in place and
// its previous value returned; a new key is appended at the end of the
// occupied prefix, or refused with ErrFull when the block is full.
// Overwrites cannot fail and never move the entry.
func (e *entries[K, V]) swap(key K, value V) (V, bool, error) {
	if i := e.index(key); i >= 0 {
		prev := e.pairs[i].value
		e.pairs[i].value = value

		return prev, true, nil
	}

	var zero V
	if len(e.pairs) == cap(e.pairs) {
		return zero, false, ErrFull
	}

	e.pairs = append(e.pairs, entry[K, V]{key: key, value: value})

	return zero, false, nil
}

// take removes key and returns the stored value. The last occupied slot is
// moved into the vacated one (swap-remove), so the prefix stays contiguous
// at the cost of reordering. The freed tail slot is zeroed so it cannot pin
// anything for the GC.
func (e *entries[K, V]) take(key K) (V, bool) {
	i := e.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}

	last := len(e.pairs) - 1
	value := e.pairs[i].value

	e.pairs[i] = e.pairs[last]
	e.pairs[last] = entry[K, V]{}
	e.pairs = e.pairs[:last]

	return value, true
}

// retain drops every pair the predicate rejects, via the same swap-remove
// used by take. The scan runs backwards so a pair moved in from the tail has
// already been judged and is never inspected twice.
func (e *entries[K, V]) retain(keep func(K, V) bool) {
	for i := len(e.pairs) - 1; i >= 0; i-- {
		if keep(e.pairs[i].key, e.pairs[i].value) {
			continue
		}

		last := len(e.pairs) - 1
		e.pairs[i] = e.pairs[last]
		e.pairs[last] = entry[K, V]{}
		e.pairs = e.pairs[:last]
	}
}

func (e *entries[K, V]) reset() {
	clear(e.pairs)
	e.pairs = e.pairs[:0]
}

func (e *entries[K, V]) clone() entries[K, V] {
	pairs := make([]entry[K, V], len(e.pairs), cap(e.pairs))
	copy(pairs, e.pairs)

	return entries[K, V]{pairs: pairs}
}

func (e *entries[K, V]) stats() Stats {
	return Stats{
		Size:     len(e.pairs),
		Capacity: cap(e.pairs),
		Free:     cap(e.pairs) - len(e.pairs),
	}
}
