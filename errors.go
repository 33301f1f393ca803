package intkeymap

import "github.com/cockroachdb/errors"

var (
	ErrInvalidCapacity   = errors.New("intkeymap: illegal initial capacity")
	ErrInvalidLoadFactor = errors.New("intkeymap: illegal load factor")
	ErrInvalidConfig     = errors.New("intkeymap: invalid config")

	// Returned by iterators when the map was structurally modified
	// by anything other than the iterator itself.
	ErrConcurrentModification = errors.New("intkeymap: concurrent modification")
	ErrNoSuchElement          = errors.New("intkeymap: no such element")
	ErrIllegalState           = errors.New("intkeymap: illegal iterator state")

	ErrKeyType              = errors.New("intkeymap: key is not a number")
	ErrValueType            = errors.New("intkeymap: value has wrong type")
	ErrUnsupportedOperation = errors.New("intkeymap: unsupported operation")
)
