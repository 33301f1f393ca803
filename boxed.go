package intkeymap

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// AnyMap is an associative container with untyped keys and values, for callers
// that can't be generic over the key width.
type AnyMap interface {
	Len() int
	IsEmpty() bool
	Get(key any) (any, bool, error)
	ContainsKey(key any) (bool, error)
	Put(key, value any) (any, bool, error)
	Remove(key any) (any, bool, error)
	PutAll(other AnyMap) error
	Clear()
}

// Boxed adapts a Map to AnyMap. Keys are unwrapped to K at the boundary, the
// underlying map never sees a boxed key.
type Boxed[K Key, V any] struct {
	m *Map[K, V]
}

var _ AnyMap = (*Boxed[int64, any])(nil)

func (m *Map[K, V]) Boxed() *Boxed[K, V] {
	return &Boxed[K, V]{m: m}
}

func (b *Boxed[K, V]) Unwrap() *Map[K, V] {
	return b.m
}

func (b *Boxed[K, V]) Len() int {
	return b.m.Len()
}

func (b *Boxed[K, V]) IsEmpty() bool {
	return b.m.IsEmpty()
}

func (b *Boxed[K, V]) Get(key any) (any, bool, error) {
	k, err := unboxKey[K](key)
	if err != nil {
		return nil, false, err
	}

	v, ok := b.m.Get(k)
	if !ok {
		return nil, false, nil
	}

	return v, true, nil
}

func (b *Boxed[K, V]) ContainsKey(key any) (bool, error) {
	k, err := unboxKey[K](key)
	if err != nil {
		return false, err
	}

	return b.m.ContainsKey(k), nil
}

func (b *Boxed[K, V]) Put(key, value any) (any, bool, error) {
	k, err := unboxKey[K](key)
	if err != nil {
		return nil, false, err
	}

	v, err := unboxValue[V](value)
	if err != nil {
		return nil, false, err
	}

	prev, ok := b.m.Put(k, v)
	if !ok {
		return nil, false, nil
	}

	return prev, true, nil
}

func (b *Boxed[K, V]) Remove(key any) (any, bool, error) {
	k, err := unboxKey[K](key)
	if err != nil {
		return nil, false, err
	}

	prev, ok := b.m.Remove(k)
	if !ok {
		return nil, false, nil
	}

	return prev, true, nil
}

// PutAll merges another Boxed map of the same key and value types.
// Any other AnyMap implementation is rejected and m is left untouched.
func (b *Boxed[K, V]) PutAll(other AnyMap) error {
	o, ok := other.(*Boxed[K, V])
	if !ok {
		return errors.Wrapf(ErrUnsupportedOperation, "put all from %T", other)
	}

	b.m.PutAll(o.m)

	return nil
}

func (b *Boxed[K, V]) Clear() {
	b.m.Clear()
}

// unboxKey narrows any Go number to K, truncating like a numeric conversion would.
func unboxKey[K Key](key any) (K, error) {
	switch k := key.(type) {
	case K:
		return k, nil
	case int:
		return K(k), nil
	case int8:
		return K(k), nil
	case int16:
		return K(k), nil
	case int32:
		return K(k), nil
	case int64:
		return K(k), nil
	case uint:
		return K(k), nil
	case uint8:
		return K(k), nil
	case uint16:
		return K(k), nil
	case uint32:
		return K(k), nil
	case uint64:
		return K(k), nil
	case uintptr:
		return K(k), nil
	case float32:
		return K(k), nil
	case float64:
		return K(k), nil
	}

	var zero K
	return zero, errors.Wrapf(ErrKeyType, "%T", key)
}

func unboxValue[V any](value any) (V, error) {
	if v, ok := value.(V); ok {
		return v, nil
	}

	var zero V
	if value == nil && nilable(reflect.TypeFor[V]()) {
		return zero, nil
	}

	return zero, errors.Wrapf(ErrValueType, "got %T, want %T", value, zero)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}

	return false
}
