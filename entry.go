package intkeymap

import "fmt"

// Entry is a single key-value binding. Entries are linked into per-bucket chains
// through next; the key and its cached hash never change once the entry is created.
type Entry[K Key, V any] struct {
	key   K
	value V
	hash  uint32
	next  *Entry[K, V]
}

func newEntry[K Key, V any](hash uint32, key K, value V, next *Entry[K, V]) *Entry[K, V] {
	return &Entry[K, V]{
		key:   key,
		value: value,
		hash:  hash,
		next:  next,
	}
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value in place and returns the old one.
// It is not a structural modification, live iterators are unaffected.
func (e *Entry[K, V]) SetValue(value V) V {
	old := e.value
	e.value = value

	return old
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%d=%v", e.key, e.value)
}
