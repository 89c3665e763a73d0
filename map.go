package fixedmap

import "iter"

// FixedMap is a map-like container for very small collections, up to a few
// dozen pairs. All entries live in one block sized at construction; lookups,
// inserts and deletes are linear scans over the occupied slots. Below ~20
// entries scanning a contiguous block beats computing a hash and chasing
// bucket structures, which is the only reason this type exists - past that
// size a regular map wins and this is the wrong tool.
//
// The capacity is fixed for the lifetime of the map: nothing ever grows,
// reallocates or rehashes, and no operation allocates. The zero value is
// unusable, construct with New.
//
// FixedMap is not safe for concurrent use. Multiple readers may share it
// only while no writer runs; callers needing more wrap it in their own lock.
type FixedMap[K comparable, V any] struct {
	entries[K, V]
}

// Returns a new empty map with room for exactly capacity pairs.
// The whole block is allocated here, once.
func New[K comparable, V any](capacity int) *FixedMap[K, V] {
	var fm FixedMap[K, V]
	fm.init(capacity)

	return &fm
}

// Looks a key up. Only == on keys is used, nothing is hashed.
func (fm *FixedMap[K, V]) Get(key K) (V, bool) {
	return fm.get(key)
}

// Returns a pointer to the value stored under key for in-place mutation, or
// nil if the key is absent. The pointer is only valid until the next Delete,
// Take or Reset - those move entries within the block.
func (fm *FixedMap[K, V]) GetRef(key K) *V {
	return fm.ref(key)
}

// Checks whether a key is in the map.
func (fm *FixedMap[K, V]) Has(key K) bool {
	return fm.index(key) >= 0
}

// Puts a pair into the map. An existing key has its value overwritten in
// place; a new key is appended after the pairs already present. Returns
// ErrFull only when the key is new and the map is at capacity - overwriting
// never fails.
func (fm *FixedMap[K, V]) Set(key K, value V) error {
	_, _, err := fm.swap(key, value)
	return err
}

// Like Set, but also reports the value that was overwritten, if any.
func (fm *FixedMap[K, V]) Swap(key K, value V) (prev V, replaced bool, err error) {
	return fm.swap(key, value)
}

// Deletes a key from the map. The last pair is moved into the freed slot,
// so deleting reorders the remaining pairs: iteration order is preserved by
// inserts but not across deletes.
func (fm *FixedMap[K, V]) Delete(key K) bool {
	_, ok := fm.take(key)
	return ok
}

// Like Delete, but also returns the value that was stored.
func (fm *FixedMap[K, V]) Take(key K) (V, bool) {
	return fm.take(key)
}

// Number of pairs currently stored.
func (fm *FixedMap[K, V]) Len() int {
	return len(fm.pairs)
}

func (fm *FixedMap[K, V]) IsEmpty() bool {
	return len(fm.pairs) == 0
}

// The capacity the map was built with. Constant.
func (fm *FixedMap[K, V]) Cap() int {
	return cap(fm.pairs)
}

// Keeps only the pairs the predicate approves of, dropping the rest in one
// O(len) pass. Like Delete, removal reorders the surviving pairs.
func (fm *FixedMap[K, V]) Retain(keep func(K, V) bool) {
	fm.retain(keep)
}

// Drops every pair, keeping the capacity.
func (fm *FixedMap[K, V]) Reset() {
	fm.reset()
}

// Returns an independent copy: same capacity, same pairs, separate storage.
func (fm *FixedMap[K, V]) Clone() *FixedMap[K, V] {
	return &FixedMap[K, V]{entries: fm.clone()}
}

func (fm *FixedMap[K, V]) Stats() Stats {
	return fm.stats()
}

// All iterates over the pairs in storage order, which is insertion order as
// long as nothing was deleted. Iterating does not hash, allocate or mutate.
// The map must not be structurally modified while an iteration is running.
func (fm *FixedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range fm.pairs {
			if !yield(fm.pairs[i].key, fm.pairs[i].value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in storage order.
func (fm *FixedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range fm.pairs {
			if !yield(fm.pairs[i].key) {
				return
			}
		}
	}
}

// Values iterates over the values in storage order.
func (fm *FixedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range fm.pairs {
			if !yield(fm.pairs[i].value) {
				return
			}
		}
	}
}

// Reports whether two maps hold the same set of pairs. Storage order and
// capacity are ignored: maps built by inserting the same pairs in different
// orders compare equal. A package function rather than a method because it
// needs V to be comparable.
func Equal[K, V comparable](a, b *FixedMap[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.pairs {
		v, ok := b.get(a.pairs[i].key)
		if !ok || v != a.pairs[i].value {
			return false
		}
	}

	return true
}

// Like Equal, for values that cannot be compared with ==.
func EqualFunc[K comparable, V1, V2 any](a *FixedMap[K, V1], b *FixedMap[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.pairs {
		v, ok := b.get(a.pairs[i].key)
		if !ok || !eq(a.pairs[i].value, v) {
			return false
		}
	}

	return true
}
