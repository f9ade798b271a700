package bincode

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// Decoder couples a Reader with a Config and the mutable decode budget. Under
// a bounded config every byte read and every container reservation is debited
// against the budget, so a maliciously huge length prefix fails with
// ErrLimitExceeded before any allocation proportional to it. A Decoder is
// exclusively owned by one decode session and is not safe for concurrent use.
type Decoder struct {
	r         Reader
	cfg       Config
	remaining uint64
	limited   bool
}

// NewDecoder creates a Decoder reading through r under cfg.
func NewDecoder(r Reader, cfg Config) *Decoder {
	return &Decoder{r: r, cfg: cfg, remaining: cfg.Limit, limited: cfg.limited()}
}

// Reader returns the underlying Reader for implementations that need raw
// access.
func (d *Decoder) Reader() Reader { return d.r }

// Config returns the session configuration.
func (d *Decoder) Config() Config { return d.cfg }

// ClaimBytesRead debits n bytes from the decode budget, failing with
// ErrLimitExceeded when the budget cannot cover them. It is a no-op under an
// unbounded config.
func (d *Decoder) ClaimBytesRead(n int) error {
	if !d.limited {
		return nil
	}
	if uint64(n) > d.remaining {
		return ErrLimitExceeded
	}
	d.remaining -= uint64(n)
	return nil
}

// UnclaimBytesRead credits n bytes back to the budget. Container decodes call
// it once per element actually consumed, releasing the up-front reservation
// made by ClaimContainerRead as real decoding proceeds.
func (d *Decoder) UnclaimBytesRead(n int) {
	if !d.limited {
		return
	}
	d.remaining += uint64(n)
}

// ClaimContainerRead debits the worst-case in-memory cost of a container of
// length elements of type T before the container is allocated. The
// reservation must be released element by element with UnclaimBytesRead as
// elements are actually decoded.
func ClaimContainerRead[T any](d *Decoder, length int) error {
	return d.claimContainer(length, sizeOf[T]())
}

// claimContainer debits length*size from the budget, guarding the
// multiplication against overflow.
func (d *Decoder) claimContainer(length, size int) error {
	if !d.limited || size == 0 {
		return nil
	}
	if uint64(length) > d.remaining/uint64(size) {
		return ErrLimitExceeded
	}
	d.remaining -= uint64(length) * uint64(size)
	return nil
}

// read claims and fills p.
func (d *Decoder) read(p []byte) error {
	if err := d.ClaimBytesRead(len(p)); err != nil {
		return err
	}
	return d.r.Read(p)
}

// DecodeU8 reads a single raw byte.
func (d *Decoder) DecodeU8() (uint8, error) {
	var buf [1]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// DecodeU16 reads an unsigned 16-bit integer per the configured int encoding.
func (d *Decoder) DecodeU16() (uint16, error) {
	if d.cfg.Ints == VarintEncoding {
		v, err := d.decodeVarint("u16", math.MaxUint16)
		return uint16(v), err
	}
	var buf [2]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return d.cfg.order().Uint16(buf[:]), nil
}

// DecodeU32 reads an unsigned 32-bit integer per the configured int encoding.
func (d *Decoder) DecodeU32() (uint32, error) {
	if d.cfg.Ints == VarintEncoding {
		v, err := d.decodeVarint("u32", math.MaxUint32)
		return uint32(v), err
	}
	var buf [4]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return d.cfg.order().Uint32(buf[:]), nil
}

// DecodeU64 reads an unsigned 64-bit integer per the configured int encoding.
func (d *Decoder) DecodeU64() (uint64, error) {
	if d.cfg.Ints == VarintEncoding {
		return d.decodeVarint("u64", math.MaxUint64)
	}
	var buf [8]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return d.cfg.order().Uint64(buf[:]), nil
}

// DecodeUint reads a platform-sized unsigned integer encoded as a u64. Values
// above the platform's uint range fail with *OutsideUsizeRangeError.
func (d *Decoder) DecodeUint() (uint, error) {
	v, err := d.DecodeU64()
	if err != nil {
		return 0, err
	}
	if uint64(uint(v)) != v {
		return 0, &OutsideUsizeRangeError{Found: v}
	}
	return uint(v), nil
}

// DecodeI8 reads a signed 8-bit integer.
func (d *Decoder) DecodeI8() (int8, error) {
	v, err := d.DecodeU8()
	return int8(v), err
}

// DecodeI16 reads a signed 16-bit integer, unzigzagging under varint encoding.
func (d *Decoder) DecodeI16() (int16, error) {
	if d.cfg.Ints == VarintEncoding {
		v, err := d.decodeVarint("i16", math.MaxUint16)
		return int16(unzigzag(v)), err
	}
	var buf [2]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return int16(d.cfg.order().Uint16(buf[:])), nil
}

// DecodeI32 reads a signed 32-bit integer, unzigzagging under varint encoding.
func (d *Decoder) DecodeI32() (int32, error) {
	if d.cfg.Ints == VarintEncoding {
		v, err := d.decodeVarint("i32", math.MaxUint32)
		return int32(unzigzag(v)), err
	}
	var buf [4]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return int32(d.cfg.order().Uint32(buf[:])), nil
}

// DecodeI64 reads a signed 64-bit integer, unzigzagging under varint encoding.
func (d *Decoder) DecodeI64() (int64, error) {
	if d.cfg.Ints == VarintEncoding {
		v, err := d.decodeVarint("i64", math.MaxUint64)
		return unzigzag(v), err
	}
	var buf [8]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return int64(d.cfg.order().Uint64(buf[:])), nil
}

// DecodeInt reads a platform-sized signed integer encoded as an i64.
func (d *Decoder) DecodeInt() (int, error) {
	v, err := d.DecodeI64()
	if err != nil {
		return 0, err
	}
	if int64(int(v)) != v {
		return 0, &OutsideUsizeRangeError{Found: uint64(v)}
	}
	return int(v), nil
}

// DecodeF32 reads an IEEE-754 single-precision float.
func (d *Decoder) DecodeF32() (float32, error) {
	var buf [4]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(d.cfg.order().Uint32(buf[:])), nil
}

// DecodeF64 reads an IEEE-754 double-precision float.
func (d *Decoder) DecodeF64() (float64, error) {
	var buf [8]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(d.cfg.order().Uint64(buf[:])), nil
}

// DecodeBool reads one byte, rejecting anything other than 0 or 1 with an
// *InvalidBooleanValueError.
func (d *Decoder) DecodeBool() (bool, error) {
	var buf [1]byte
	if err := d.read(buf[:]); err != nil {
		return false, err
	}
	switch buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidBooleanValueError{Found: buf[0]}
	}
}

// DecodeRune reads a 4-byte Unicode scalar value, rejecting surrogates and
// out-of-range values with ErrInvalidCharEncoding.
func (d *Decoder) DecodeRune() (rune, error) {
	var buf [4]byte
	if err := d.read(buf[:]); err != nil {
		return 0, err
	}
	v := d.cfg.order().Uint32(buf[:])
	if v > utf8.MaxRune || utf16.IsSurrogate(rune(v)) {
		return 0, ErrInvalidCharEncoding
	}
	return rune(v), nil
}

// DecodeLen reads an element count or byte length. Values the platform's int
// cannot represent fail with *OutsideUsizeRangeError.
func (d *Decoder) DecodeLen() (int, error) {
	v, err := d.DecodeU64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, &OutsideUsizeRangeError{Found: v}
	}
	return int(v), nil
}

// DecodeBytes reads a length-prefixed byte string into a fresh slice. The
// declared length is claimed against the budget before the allocation.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	if err := d.ClaimBytesRead(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := d.r.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeBytesBorrow reads a length-prefixed byte string as a view into the
// input when the Reader can lend one, falling back to an owned copy otherwise.
// A borrowed slice stays valid only as long as the input buffer does.
func (d *Decoder) DecodeBytesBorrow() ([]byte, error) {
	br, ok := d.r.(BorrowReader)
	if !ok {
		return d.DecodeBytes()
	}
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	if err := d.ClaimBytesRead(n); err != nil {
		return nil, err
	}
	return br.Borrow(n)
}

// DecodeFixedBytes fills dst with raw bytes, no length prefix.
func (d *Decoder) DecodeFixedBytes(dst []byte) error {
	return d.read(dst)
}

// DecodeString reads a length-prefixed string, rejecting invalid UTF-8 with
// ErrUtf8.
func (d *Decoder) DecodeString() (string, error) {
	buf, err := d.DecodeBytesBorrow()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrUtf8
	}
	return string(buf), nil
}

// DecodeStringBorrow reads a length-prefixed string aliasing the input buffer
// when the Reader can lend views. The result is valid only as long as the
// input buffer is alive and unmodified; use DecodeString when in doubt.
func (d *Decoder) DecodeStringBorrow() (string, error) {
	buf, err := d.DecodeBytesBorrow()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrUtf8
	}
	if len(buf) == 0 {
		return "", nil
	}
	return unsafe.String(&buf[0], len(buf)), nil
}

// DecodeVariant reads an enum discriminant and checks it against the declared
// variant count. numVariants of zero fails with ErrEmptyEnum; a discriminant
// at or beyond numVariants fails with *UnexpectedVariantError.
func (d *Decoder) DecodeVariant(typeName string, numVariants uint32) (uint32, error) {
	if numVariants == 0 {
		return 0, ErrEmptyEnum
	}
	tag, err := d.DecodeU32()
	if err != nil {
		return 0, err
	}
	if tag >= numVariants {
		return 0, &UnexpectedVariantError{
			TypeName: typeName,
			Min:      0,
			Max:      numVariants - 1,
			Found:    tag,
		}
	}
	return tag, nil
}
