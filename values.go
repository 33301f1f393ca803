package intkeymap

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// ValueCollection is a live view of the values of a Map. Values are compared
// with the map's value equality (see WithValueEqual).
type ValueCollection[K Key, V any] struct {
	m *Map[K, V]
}

func (c *ValueCollection[K, V]) Len() int {
	return c.m.size
}

func (c *ValueCollection[K, V]) Contains(value V) bool {
	return c.m.containsValue(value)
}

// Removes the first binding found with a value equal to value.
func (c *ValueCollection[K, V]) Remove(value V) bool {
	it := c.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			panic(errors.Wrap(err, "remove value"))
		}

		if c.m.valueEqual(v, value) {
			return it.Remove() == nil
		}
	}

	return false
}

func (c *ValueCollection[K, V]) Clear() {
	c.m.reset()
}

func (c *ValueCollection[K, V]) Iterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{c.m.newHashIterator()}
}

func (c *ValueCollection[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		mustRange(c.m.forEachEntry(func(e *Entry[K, V]) bool {
			return yield(e.value)
		}))
	}
}
