package intkeymap

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Map is a hash map keyed by fixed width integers. Keys are stored unboxed in
// singly linked per-bucket chains and the bucket array doubles once the number
// of entries reaches capacity*loadFactor.
//
// Map is not safe for concurrent use. A structural modification made while an
// iterator is live is detected on the iterator's next step and reported as
// ErrConcurrentModification; this is a debugging aid, not a guarantee.
type Map[K Key, V any] struct {
	table[K, V]

	keySet   *KeySet[K, V]
	values   *ValueCollection[K, V]
	entrySet *EntrySet[K, V]
}

type (
	IntKeyMap[V any]  = Map[int32, V]
	LongKeyMap[V any] = Map[int64, V]
)

// Returns a new map with room for `capacity` buckets, rounded up to a power of 2.
// A negative capacity or a load factor that is not a positive number is rejected.
func New[K Key, V any](capacity int, loadFactor float64, opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(capacity, loadFactor, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Returns a new map with DefaultCapacity and DefaultLoadFactor.
func NewDefault[K Key, V any](opts ...Option[K, V]) *Map[K, V] {
	m, err := New(DefaultCapacity, DefaultLoadFactor, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Number of buckets.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

func (m *Map[K, V]) Threshold() int {
	return m.threshold
}

func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

// Returns the value bound to key. The second result tells a bound zero value
// apart from a missing key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

func (m *Map[K, V]) GetEntry(key K) *Entry[K, V] {
	return m.getEntry(key)
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.getEntry(key) != nil
}

func (m *Map[K, V]) ContainsValue(value V) bool {
	return m.containsValue(value)
}

// Binds value to key. Returns the previous value and whether the key was present.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	return m.put(key, value)
}

// Removes key. Returns the removed value and whether the key was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.remove(key)
}

// Removes every entry. The bucket array keeps its capacity.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Copies every binding of other into m. The bucket array is grown once up front
// when other alone would push m over its threshold.
func (m *Map[K, V]) PutAll(other *Map[K, V]) {
	n := other.Len()
	if n == 0 {
		return
	}

	if n > m.threshold {
		target := NextPowerOf2(int(float64(n)/m.loadFactor + 1))
		target = min(target, m.maxCapacity)

		if target > len(m.buckets) {
			m.resize(target)
		}
	}

	for _, e := range other.buckets {
		for ; e != nil; e = e.next {
			m.put(e.key, e.value)
		}
	}
}

// Returns a shallow copy of m with the same settings.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		table: table[K, V]{
			buckets:     make([]*Entry[K, V], len(m.buckets)),
			threshold:   m.threshold,
			loadFactor:  m.loadFactor,
			maxCapacity: m.maxCapacity,
			hashFunc:    m.hashFunc,
			valueEqual:  m.valueEqual,
			logger:      m.logger,
		},
	}
	c.PutAll(m)

	return c
}

func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}

// Calls f for every binding until f returns false. Returns ErrConcurrentModification
// if f structurally modifies the map.
func (m *Map[K, V]) ForEach(f func(K, V) bool) error {
	return m.forEachEntry(func(e *Entry[K, V]) bool {
		return f(e.key, e.value)
	})
}

func (m *Map[K, V]) forEachEntry(f func(*Entry[K, V]) bool) error {
	it := m.newHashIterator()
	for it.HasNext() {
		e, err := it.nextEntry()
		if err != nil {
			return err
		}

		if !f(e) {
			return nil
		}
	}

	// Catches a modification made while visiting the last entry.
	return it.checkModCount()
}

func mustRange(err error) {
	if err != nil {
		panic(errors.Wrap(err, "range over map"))
	}
}

// All returns an iterator over the bindings of m. The order is unspecified and
// changes when the bucket array grows.
//
// It panics if the loop body structurally modifies the map.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mustRange(m.ForEach(yield))
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.KeySet().All()
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return m.ValueCollection().All()
}

func (m *Map[K, V]) KeySet() *KeySet[K, V] {
	if m.keySet == nil {
		m.keySet = &KeySet[K, V]{m: m}
	}

	return m.keySet
}

func (m *Map[K, V]) ValueCollection() *ValueCollection[K, V] {
	if m.values == nil {
		m.values = &ValueCollection[K, V]{m: m}
	}

	return m.values
}

func (m *Map[K, V]) EntrySet() *EntrySet[K, V] {
	if m.entrySet == nil {
		m.entrySet = &EntrySet[K, V]{m: m}
	}

	return m.entrySet
}
