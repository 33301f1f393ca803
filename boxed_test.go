package intkeymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foreignMap is an AnyMap that isn't backed by a Map.
type foreignMap map[any]any

func (f foreignMap) Len() int {
	return len(f)
}

func (f foreignMap) IsEmpty() bool {
	return len(f) == 0
}

func (f foreignMap) Get(key any) (any, bool, error) {
	v, ok := f[key]
	return v, ok, nil
}

func (f foreignMap) ContainsKey(key any) (bool, error) {
	_, ok := f[key]
	return ok, nil
}

func (f foreignMap) Put(key, value any) (any, bool, error) {
	prev, ok := f[key]
	f[key] = value
	return prev, ok, nil
}

func (f foreignMap) Remove(key any) (any, bool, error) {
	prev, ok := f[key]
	delete(f, key)
	return prev, ok, nil
}

func (f foreignMap) PutAll(AnyMap) error {
	return ErrUnsupportedOperation
}

func (f foreignMap) Clear() {
	clear(f)
}

func TestBoxed_Keys(t *testing.T) {
	b := NewDefault[int32, string]().Boxed()

	_, _, err := b.Put(int32(1), "int32")
	require.NoError(t, err)

	tests := []struct {
		name string
		key  any
	}{
		{"int", 1},
		{"int8", int8(1)},
		{"int16", int16(1)},
		{"int64", int64(1)},
		{"uint", uint(1)},
		{"uint8", uint8(1)},
		{"uint16", uint16(1)},
		{"uint32", uint32(1)},
		{"uint64", uint64(1)},
		{"uintptr", uintptr(1)},
		{"float32", float32(1.9)},
		{"float64", float64(1.2)},
		{"truncated int64", int64(1<<32 + 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok, err := b.Get(tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "int32", v)
		})
	}
}

func TestBoxed_NamedKeyType(t *testing.T) {
	type rowID int64

	b := NewDefault[rowID, int]().Boxed()

	_, _, err := b.Put(rowID(5), 50)
	require.NoError(t, err)

	ok, err := b.ContainsKey(5)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBoxed_KeyType(t *testing.T) {
	b := NewDefault[int64, int]().Boxed()

	for _, key := range []any{"1", nil, struct{}{}, []int64{1}} {
		_, _, err := b.Get(key)
		require.ErrorIs(t, err, ErrKeyType)

		_, err = b.ContainsKey(key)
		require.ErrorIs(t, err, ErrKeyType)

		_, _, err = b.Put(key, 1)
		require.ErrorIs(t, err, ErrKeyType)

		_, _, err = b.Remove(key)
		require.ErrorIs(t, err, ErrKeyType)
	}

	require.True(t, b.IsEmpty())
}

func TestBoxed_ValueType(t *testing.T) {
	b := NewDefault[int64, int]().Boxed()

	_, _, err := b.Put(1, "one")
	require.ErrorIs(t, err, ErrValueType)

	_, _, err = b.Put(1, nil)
	require.ErrorIs(t, err, ErrValueType)

	require.Zero(t, b.Len())
}

func TestBoxed_NilValues(t *testing.T) {
	m := NewDefault[int64, *string]()
	b := m.Boxed()

	_, _, err := b.Put(1, nil)
	require.NoError(t, err)

	v, ok, err := b.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, v.(*string))

	v, ok, err = b.Get(2)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, v)

	anyMap := NewDefault[int64, any]().Boxed()
	_, _, err = anyMap.Put(1, nil)
	require.NoError(t, err)

	ok, err = anyMap.ContainsKey(1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBoxed_PutRemove(t *testing.T) {
	m := NewDefault[int64, string]()
	b := m.Boxed()
	require.Same(t, m, b.Unwrap())

	prev, ok, err := b.Put(7, "a")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, prev)

	prev, ok, err = b.Put(7, "b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a", prev)

	prev, ok, err = b.Remove(7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", prev)

	prev, ok, err = b.Remove(7)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, prev)

	b.Put(1, "x")
	b.Clear()
	require.True(t, b.IsEmpty())
}

func TestBoxed_PutAll(t *testing.T) {
	dst := NewDefault[int64, int]().Boxed()
	src := NewDefault[int64, int]().Boxed()
	for i := range 10 {
		src.Put(i, i)
	}

	require.NoError(t, dst.PutAll(src))
	assert.Equal(t, 10, dst.Len())
}

func TestBoxed_PutAll_Foreign(t *testing.T) {
	dst := NewDefault[int64, int]().Boxed()
	dst.Put(1, 1)

	foreign := foreignMap{int64(2): 2}
	require.ErrorIs(t, dst.PutAll(foreign), ErrUnsupportedOperation)

	// A map of another width is foreign too.
	other := NewDefault[int32, int]().Boxed()
	other.Put(3, 3)
	require.ErrorIs(t, dst.PutAll(other), ErrUnsupportedOperation)

	assert.Equal(t, 1, dst.Len())
}
