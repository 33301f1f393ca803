package intkeymap

import "iter"

// KeySet is a live view of the keys of a Map. It holds no state of its own:
// removals go straight to the map and map mutations are visible immediately.
type KeySet[K Key, V any] struct {
	m *Map[K, V]
}

func (s *KeySet[K, V]) Len() int {
	return s.m.size
}

func (s *KeySet[K, V]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Removes key from the underlying map.
func (s *KeySet[K, V]) Remove(key K) bool {
	return s.m.removeEntryForKey(key) != nil
}

func (s *KeySet[K, V]) Clear() {
	s.m.reset()
}

func (s *KeySet[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{s.m.newHashIterator()}
}

func (s *KeySet[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		mustRange(s.m.forEachEntry(func(e *Entry[K, V]) bool {
			return yield(e.key)
		}))
	}
}

// EntrySet is a live view of the bindings of a Map.
type EntrySet[K Key, V any] struct {
	m *Map[K, V]
}

func (s *EntrySet[K, V]) Len() int {
	return s.m.size
}

// Reports whether key is bound to a value equal to value.
func (s *EntrySet[K, V]) Contains(key K, value V) bool {
	e := s.m.getEntry(key)

	return e != nil && s.m.valueEqual(e.value, value)
}

// Removes the binding only if key is currently bound to a value equal to value.
func (s *EntrySet[K, V]) Remove(key K, value V) bool {
	if !s.Contains(key, value) {
		return false
	}

	return s.m.removeEntryForKey(key) != nil
}

func (s *EntrySet[K, V]) Clear() {
	s.m.reset()
}

func (s *EntrySet[K, V]) Iterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{s.m.newHashIterator()}
}

func (s *EntrySet[K, V]) All() iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		mustRange(s.m.forEachEntry(yield))
	}
}
