package intkeymap

import "github.com/cockroachdb/errors"

// hashIterator walks the bucket array from the highest index down, and each
// chain from its head. It remembers modCount at creation and refuses to advance
// once the map was structurally modified behind its back.
type hashIterator[K Key, V any] struct {
	m       *Map[K, V]
	buckets []*Entry[K, V]

	next    *Entry[K, V] // entry returned by the following nextEntry
	current *Entry[K, V] // entry returned by the last nextEntry, nil after Remove
	index   int          // lowest bucket index visited so far

	expectedModCount uint64
}

func (m *Map[K, V]) newHashIterator() hashIterator[K, V] {
	it := hashIterator[K, V]{
		m:                m,
		buckets:          m.buckets,
		index:            len(m.buckets),
		expectedModCount: m.modCount,
	}

	if m.size > 0 {
		for it.next == nil && it.index > 0 {
			it.index--
			it.next = it.buckets[it.index]
		}
	}

	return it
}

func (it *hashIterator[K, V]) HasNext() bool {
	return it.next != nil
}

func (it *hashIterator[K, V]) checkModCount() error {
	if it.m.modCount != it.expectedModCount {
		return errors.Wrapf(ErrConcurrentModification,
			"modCount %d, iterator expects %d", it.m.modCount, it.expectedModCount)
	}

	return nil
}

func (it *hashIterator[K, V]) nextEntry() (*Entry[K, V], error) {
	if err := it.checkModCount(); err != nil {
		return nil, err
	}

	e := it.next
	if e == nil {
		return nil, ErrNoSuchElement
	}

	n := e.next
	for n == nil && it.index > 0 {
		it.index--
		n = it.buckets[it.index]
	}

	it.next = n
	it.current = e

	return e, nil
}

// Remove deletes the entry returned by the last call to Next.
func (it *hashIterator[K, V]) Remove() error {
	if it.current == nil {
		return errors.Wrap(ErrIllegalState, "remove called before next or twice for the same element")
	}
	if err := it.checkModCount(); err != nil {
		return err
	}

	key := it.current.key
	it.current = nil

	it.m.removeEntryForKey(key)
	it.expectedModCount = it.m.modCount

	return nil
}

type EntryIterator[K Key, V any] struct {
	hashIterator[K, V]
}

func (it *EntryIterator[K, V]) Next() (*Entry[K, V], error) {
	return it.nextEntry()
}

type KeyIterator[K Key, V any] struct {
	hashIterator[K, V]
}

func (it *KeyIterator[K, V]) Next() (K, error) {
	e, err := it.nextEntry()
	if err != nil {
		var zero K
		return zero, err
	}

	return e.key, nil
}

type ValueIterator[K Key, V any] struct {
	hashIterator[K, V]
}

func (it *ValueIterator[K, V]) Next() (V, error) {
	e, err := it.nextEntry()
	if err != nil {
		var zero V
		return zero, err
	}

	return e.value, nil
}
