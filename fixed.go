package bincode

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// fixedSizeCache avoids the reflection cost of binary.Size on every call.
var fixedSizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed is a ready-made Codec for any struct Payload composed entirely of
// fixed-size fields, eliminating boilerplate for simple records. The whole
// payload is laid out field by field at natural width in the configured byte
// order, so Fixed always behaves as if the config had fixed int encoding.
//
// Constraint: Payload must not contain variable-size fields like slices,
// maps, or strings.
type Fixed[Payload any] struct {
	Payload Payload
}

var _ Codec = (*Fixed[struct{}])(nil)

// Size returns the encoded size of the payload in bytes, or -1 if the payload
// contains variable-size fields. The result is cached per type.
func (c *Fixed[Payload]) Size() int {
	t := reflect.TypeOf((*Payload)(nil)).Elem()
	if size, ok := fixedSizeCache.Load(t); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	fixedSizeCache.Store(t, size)
	return size
}

// Encode writes the payload at its fixed layout.
func (c *Fixed[Payload]) Encode(e *Encoder) error {
	size := c.Size()
	if size < 0 {
		return fmt.Errorf("bincode: %T contains variable-size fields", c.Payload)
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, e.Config().order(), &c.Payload); err != nil {
		return err
	}
	return e.Writer().Write(buf)
}

// Decode reads the payload at its fixed layout, claiming the full size
// against the decode budget first.
func (c *Fixed[Payload]) Decode(d *Decoder) error {
	size := c.Size()
	if size < 0 {
		return fmt.Errorf("bincode: %T contains variable-size fields", c.Payload)
	}
	if err := d.ClaimBytesRead(size); err != nil {
		return err
	}
	buf := make([]byte, size)
	if err := d.Reader().Read(buf); err != nil {
		return err
	}
	_, err := binary.Decode(buf, d.Config().order(), &c.Payload)
	return err
}
