package intkeymap

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75

	// MaxCapacity bounds the number of buckets. Once a table reaches it, the
	// chains keep growing instead.
	MaxCapacity = 1 << 30
)

type table[K Key, V any] struct {
	// Chain heads, len(buckets) is always a power of 2.
	buckets []*Entry[K, V]

	size        int
	threshold   int
	loadFactor  float64
	maxCapacity int

	// Bumped on insertion of a new key, removal and clear.
	// Replacing the value of an existing key doesn't count.
	modCount uint64

	hashFunc   HashFunc[K]
	valueEqual func(a, b V) bool
	logger     *zap.Logger
}

type Option[K Key, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K Key, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Resize events are logged at debug level, hitting the max capacity at warn level.
func WithLogger[K Key, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}

// Limits the bucket array growth. The value is rounded up to a power of 2
// and never exceeds MaxCapacity.
func WithMaxCapacity[K Key, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxCapacity = NextPowerOf2(capacity)
	}
}

// Override the equality used by value lookups (ContainsValue and the views).
func WithValueEqual[K Key, V any](f func(a, b V) bool) Option[K, V] {
	return func(t *table[K, V]) {
		t.valueEqual = f
	}
}

func deepEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

func thresholdFor(capacity int, loadFactor float64) int {
	th := float64(capacity) * loadFactor
	if th >= math.MaxInt {
		return math.MaxInt
	}

	return int(th)
}

func (t *table[K, V]) init(capacity int, loadFactor float64, opts ...Option[K, V]) error {
	if capacity < 0 {
		return errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	if loadFactor <= 0 || math.IsNaN(loadFactor) {
		return errors.Wrapf(ErrInvalidLoadFactor, "load factor %v", loadFactor)
	}

	t.maxCapacity = MaxCapacity
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = Mix[K]
	}
	if t.valueEqual == nil {
		t.valueEqual = deepEqual[V]
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	capacity = min(NextPowerOf2(capacity), t.maxCapacity)

	t.buckets = make([]*Entry[K, V], capacity)
	t.loadFactor = loadFactor
	t.threshold = thresholdFor(capacity, loadFactor)
	t.size = 0

	return nil
}

func (t *table[K, V]) getEntry(key K) *Entry[K, V] {
	h := t.hashFunc(key)

	for e := t.buckets[indexFor(h, len(t.buckets))]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			return e
		}
	}

	return nil
}

func (t *table[K, V]) get(key K) (V, bool) {
	if e := t.getEntry(key); e != nil {
		return e.value, true
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) put(key K, value V) (V, bool) {
	h := t.hashFunc(key)
	i := indexFor(h, len(t.buckets))

	for e := t.buckets[i]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			return e.SetValue(value), true
		}
	}

	t.modCount++
	t.addEntry(h, key, value, i)

	var zero V
	return zero, false
}

// addEntry links a new entry at the head of bucket i and grows the table
// once the threshold is reached.
func (t *table[K, V]) addEntry(h uint32, key K, value V, i int) {
	t.buckets[i] = newEntry(h, key, value, t.buckets[i])
	t.size++

	if t.size >= t.threshold {
		t.resize(2 * len(t.buckets))
	}
}

func (t *table[K, V]) resize(capacity int) {
	oldCapacity := len(t.buckets)
	if oldCapacity >= t.maxCapacity {
		// Never try again, the map runs above its load factor from now on.
		t.threshold = math.MaxInt
		t.logger.Warn("intkeymap: bucket array reached max capacity",
			zap.Int("capacity", oldCapacity),
			zap.Int("size", t.size),
		)

		return
	}

	// Live iterators hold the old bucket array.
	t.modCount++

	buckets := make([]*Entry[K, V], capacity)
	t.transfer(buckets)

	t.buckets = buckets
	t.threshold = thresholdFor(capacity, t.loadFactor)

	t.logger.Debug("intkeymap: resized",
		zap.Int("from", oldCapacity),
		zap.Int("to", capacity),
		zap.Int("size", t.size),
		zap.Float64("loadFactor", t.loadFactor),
	)
}

// transfer moves every entry into dst, relinking chains in place.
// Cached hashes are reused, keys are never rehashed.
func (t *table[K, V]) transfer(dst []*Entry[K, V]) {
	for j, e := range t.buckets {
		t.buckets[j] = nil

		for e != nil {
			next := e.next
			i := indexFor(e.hash, len(dst))

			e.next = dst[i]
			dst[i] = e
			e = next
		}
	}
}

func (t *table[K, V]) removeEntryForKey(key K) *Entry[K, V] {
	h := t.hashFunc(key)
	i := indexFor(h, len(t.buckets))

	var prev *Entry[K, V]
	for e := t.buckets[i]; e != nil; prev, e = e, e.next {
		if e.hash != h || e.key != key {
			continue
		}

		t.modCount++
		t.size--

		if prev == nil {
			t.buckets[i] = e.next
		} else {
			prev.next = e.next
		}

		return e
	}

	return nil
}

func (t *table[K, V]) remove(key K) (V, bool) {
	if e := t.removeEntryForKey(key); e != nil {
		return e.value, true
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) containsValue(value V) bool {
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			if t.valueEqual(e.value, value) {
				return true
			}
		}
	}

	return false
}

func (t *table[K, V]) reset() {
	t.modCount++
	clear(t.buckets)
	t.size = 0
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		Threshold:  t.threshold,
		LoadFactor: t.loadFactor,
	}

	for _, e := range t.buckets {
		if e == nil {
			continue
		}

		s.UsedBuckets++

		n := 0
		for ; e != nil; e = e.next {
			n++
		}
		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}
