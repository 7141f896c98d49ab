// Package registry implements an order-preserving, id-indexed collection
// used to build the translation tables that the idtable package compiles
// and the convert package serves: blocks, items, entities and packets are all registered
// once, in a fixed order, and then looked up either by key or by the index
// that order assigned them.
package registry

// entry is one (key, value) pair held by a Registry, along with the key so
// Iter can hand back both halves without a second map lookup.
type entry[K comparable, V any] struct {
	key K
	val V
}

// Registry is an insertion-ordered map. Besides the usual key lookup, every
// entry has a stable position — its index — that corresponds to its order
// of insertion; this is what backs the network ids that idtable's lookup
// arrays are indexed by.
//
// A Registry is not safe for concurrent use; callers needing concurrent
// access should guard it externally, the same way Chunk guards Section.
type Registry[K comparable, V any] struct {
	items []entry[K, V]
	// index is where the next call to Insert will place its entry. Add and
	// InsertAt both move it; Remove walks it back if removal happened at or
	// before it, so that an Insert immediately following a Remove lands
	// where the removed entry used to be instead of sliding past it.
	index int
	ids   map[K]int
}

// New creates an empty registry. Calling Insert before any InsertAt behaves
// exactly like Add.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{ids: map[K]int{}}
}

// Add appends k/v to the end of the registry and moves the insert cursor
// there, so that any Insert calls that follow also append at the end.
// Panics if k is already present.
func (r *Registry[K, V]) Add(k K, v V) {
	if _, ok := r.ids[k]; ok {
		panic("registry: key already present")
	}
	r.ids[k] = len(r.items)
	r.items = append(r.items, entry[K, V]{k, v})
	r.index = len(r.items)
}

// Insert places k/v at the current insert cursor, shifting every later
// entry up by one, then advances the cursor past it. Before any InsertAt
// call this behaves like Add. Panics if k is already present.
func (r *Registry[K, V]) Insert(k K, v V) {
	if _, ok := r.ids[k]; ok {
		panic("registry: key already present")
	}
	for _, e := range r.items[r.index:] {
		r.ids[e.key]++
	}
	r.ids[k] = r.index
	r.items = append(r.items, entry[K, V]{})
	copy(r.items[r.index+1:], r.items[r.index:])
	r.items[r.index] = entry[K, V]{k, v}
	r.index++
}

// InsertAt moves the insert cursor to i and then calls Insert. Subsequent
// Insert calls continue from i+1, i+2, and so on.
func (r *Registry[K, V]) InsertAt(i int, k K, v V) {
	if i > len(r.items) {
		panic("registry: index out of range")
	}
	r.index = i
	r.Insert(k, v)
}

// Remove deletes the entry for k. If the insert cursor was at or past the
// removed entry, it moves back by one so a following Insert takes the
// removed entry's old place rather than the position after it.
func (r *Registry[K, V]) Remove(k K) {
	i, ok := r.ids[k]
	if !ok {
		panic("registry: key not present")
	}
	r.RemoveIndex(i)
}

// RemoveIndex deletes the entry at index i. See Remove for the cursor
// adjustment.
func (r *Registry[K, V]) RemoveIndex(i int) {
	for _, e := range r.items[i+1:] {
		r.ids[e.key]--
	}
	delete(r.ids, r.items[i].key)
	r.items = append(r.items[:i], r.items[i+1:]...)
	if r.index >= i {
		r.index--
	}
}

// Get returns the value and index registered under k.
func (r *Registry[K, V]) Get(k K) (i int, v V, ok bool) {
	idx, ok := r.ids[k]
	if !ok {
		return 0, v, false
	}
	return idx, r.items[idx].val, true
}

// GetIndex returns the key and value at index i.
func (r *Registry[K, V]) GetIndex(i int) (k K, v V, ok bool) {
	if i < 0 || i >= len(r.items) {
		return k, v, false
	}
	e := r.items[i]
	return e.key, e.val, true
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int { return len(r.items) }

// Iter calls fn for every entry in index order, stopping early if fn
// returns false.
func (r *Registry[K, V]) Iter(fn func(i int, k K, v V) bool) {
	for i, e := range r.items {
		if !fn(i, e.key, e.val) {
			return
		}
	}
}
