package fixedmap

import "iter"

// FixedSet is the key-only counterpart of FixedMap: the same fixed block and
// linear scans, with no values stored. The struct{} value type occupies no
// space in the entry block.
//
// Like FixedMap, it never grows and is not safe for concurrent use.
type FixedSet[K comparable] struct {
	entries[K, struct{}]
}

// Returns a new empty set with room for exactly capacity keys.
func NewSet[K comparable](capacity int) *FixedSet[K] {
	var fs FixedSet[K]
	fs.init(capacity)

	return &fs
}

// Puts a key into the set. Reports whether the key was new; putting a key
// that is already present is a no-op. Returns ErrFull only when the key is
// new and the set is at capacity.
func (fs *FixedSet[K]) Put(key K) (bool, error) {
	_, existed, err := fs.swap(key, struct{}{})
	if err != nil {
		return false, err
	}

	return !existed, nil
}

// Checks whether a key is in the set.
func (fs *FixedSet[K]) Has(key K) bool {
	return fs.index(key) >= 0
}

// Deletes a key from the set. The last key is moved into the freed slot, so
// iteration order is not preserved across deletes.
func (fs *FixedSet[K]) Delete(key K) bool {
	_, ok := fs.take(key)
	return ok
}

// Number of keys currently stored.
func (fs *FixedSet[K]) Len() int {
	return len(fs.pairs)
}

func (fs *FixedSet[K]) IsEmpty() bool {
	return len(fs.pairs) == 0
}

// The capacity the set was built with. Constant.
func (fs *FixedSet[K]) Cap() int {
	return cap(fs.pairs)
}

// Keeps only the keys the predicate approves of, dropping the rest in one
// O(len) pass. Like Delete, removal reorders the surviving keys.
func (fs *FixedSet[K]) Retain(keep func(K) bool) {
	fs.retain(func(key K, _ struct{}) bool {
		return keep(key)
	})
}

// Drops every key, keeping the capacity.
func (fs *FixedSet[K]) Reset() {
	fs.reset()
}

// Returns an independent copy: same capacity, same keys, separate storage.
func (fs *FixedSet[K]) Clone() *FixedSet[K] {
	return &FixedSet[K]{entries: fs.clone()}
}

func (fs *FixedSet[K]) Stats() Stats {
	return fs.stats()
}

// All iterates over the keys in storage order: insertion order as long as
// nothing was deleted. The set must not be structurally modified while an
// iteration is running.
func (fs *FixedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range fs.pairs {
			if !yield(fs.pairs[i].key) {
				return
			}
		}
	}
}

// Reports whether two sets hold the same keys, in any storage order.
func EqualSets[K comparable](a, b *FixedSet[K]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.pairs {
		if b.index(a.pairs[i].key) < 0 {
			return false
		}
	}

	return true
}
