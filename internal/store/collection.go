// Package store holds the in-memory task collections. A store is the
// single owner of its tasks: every read and every persistence write
// flows through it.
package store

// Persister is the durable slot a collection syncs into. Load never
// fails (the adapter falls back to defaults) and Save swallows backend
// errors, so the store stays usable even when persistence is broken.
type Persister[T any] interface {
	Load() []T
	Save(items []T)
}

// Keyed is satisfied by records carrying a unique string id.
type Keyed interface {
	Key() string
}

// collection is the insertion-ordered core shared by TaskStore and
// SimpleStore. Order of the backing slice is display order; no implicit
// sort is ever applied.
type collection[T Keyed] struct {
	items   []T
	persist Persister[T]
}

func newCollection[T Keyed](p Persister[T]) collection[T] {
	return collection[T]{items: p.Load(), persist: p}
}

// indexOf returns the position of the record with the given id, or -1.
func (c *collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.Key() == id {
			return i
		}
	}
	return -1
}

// save writes the full collection to the persister. Mutating operations
// call this synchronously before returning.
func (c *collection[T]) save() {
	c.persist.Save(c.items)
}

// add appends at the end, preserving insertion order, and saves.
func (c *collection[T]) add(item T) {
	c.items = append(c.items, item)
	c.save()
}

// remove deletes the record with the given id if present. Removing an
// absent id is a no-op that does not touch the persister.
func (c *collection[T]) remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.save()
	return true
}

// replace swaps in a whole new collection and saves.
func (c *collection[T]) replace(items []T) {
	c.items = append([]T(nil), items...)
	c.save()
}

// all returns a copy of the collection in insertion order.
func (c *collection[T]) all() []T {
	return append([]T(nil), c.items...)
}

// filter returns the records matching pred, preserving order.
func (c *collection[T]) filter(pred func(T) bool) []T {
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
