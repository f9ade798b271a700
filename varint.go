package bincode

import "math"

// Variable-width integer layout. Values below 251 occupy a single byte; larger
// values carry a marker byte announcing the width of the payload that follows,
// in the configured byte order. Markers 254 (128-bit) and 255 are not
// representable in Go and are rejected on decode.
const (
	varintSingleByteMax = 250
	varintMarkerU16     = 251
	varintMarkerU32     = 252
	varintMarkerU64     = 253
	varintMarkerU128    = 254
)

// encodeVarint writes v in the variable-width layout.
func (e *Encoder) encodeVarint(v uint64) error {
	switch {
	case v <= varintSingleByteMax:
		return e.write([]byte{byte(v)})
	case v <= math.MaxUint16:
		var buf [3]byte
		buf[0] = varintMarkerU16
		e.cfg.order().PutUint16(buf[1:], uint16(v))
		return e.write(buf[:])
	case v <= math.MaxUint32:
		var buf [5]byte
		buf[0] = varintMarkerU32
		e.cfg.order().PutUint32(buf[1:], uint32(v))
		return e.write(buf[:])
	default:
		var buf [9]byte
		buf[0] = varintMarkerU64
		e.cfg.order().PutUint64(buf[1:], v)
		return e.write(buf[:])
	}
}

// decodeVarint reads one variable-width integer. typeName and max describe the
// destination type; a decoded value above max, or a payload wider than the
// destination, fails with *InvalidIntegerTypeError.
func (d *Decoder) decodeVarint(typeName string, max uint64) (uint64, error) {
	var marker [1]byte
	if err := d.read(marker[:]); err != nil {
		return 0, err
	}
	var v uint64
	switch marker[0] {
	case varintMarkerU16:
		var buf [2]byte
		if err := d.read(buf[:]); err != nil {
			return 0, err
		}
		v = uint64(d.cfg.order().Uint16(buf[:]))
	case varintMarkerU32:
		var buf [4]byte
		if err := d.read(buf[:]); err != nil {
			return 0, err
		}
		v = uint64(d.cfg.order().Uint32(buf[:]))
	case varintMarkerU64:
		var buf [8]byte
		if err := d.read(buf[:]); err != nil {
			return 0, err
		}
		v = d.cfg.order().Uint64(buf[:])
	default:
		if marker[0] > varintSingleByteMax {
			// 254 announces a 128-bit payload, 255 is reserved.
			return 0, &InvalidIntegerTypeError{Expected: typeName, Found: uint64(marker[0])}
		}
		v = uint64(marker[0])
	}
	if v > max {
		return 0, &InvalidIntegerTypeError{Expected: typeName, Found: v}
	}
	return v, nil
}

// zigzag maps a signed value to an unsigned one so that integers of small
// magnitude, of either sign, stay in the single-byte range.
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// unzigzag inverts zigzag.
func unzigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
