package bincode

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the reflection cost of computing an element type's
// in-memory size on every container decode. Using a concurrent map makes it
// safe to share across decode sessions.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// sizeOf returns the in-memory size of T, the per-element unit the decode
// budget is claimed in before a container allocation is trusted.
func sizeOf[T any]() int {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	size := int(t.Size())
	sizeCache.Store(t, size)
	return size
}
