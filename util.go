package bincode

import "encoding/binary"

var (
	// BE is big-endian byte order.
	BE = binary.BigEndian
	// LE is little-endian byte order, the default wire order.
	LE = binary.LittleEndian
)
