package bincode

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoder couples a Writer with a Config. Per-type encode implementations
// receive the Encoder and drive the primitive methods below; everything on the
// wire bottoms out in these. An Encoder is exclusively owned by one encode
// session and is not safe for concurrent use.
type Encoder struct {
	w   Writer
	cfg Config
}

// NewEncoder creates an Encoder writing through w under cfg.
func NewEncoder(w Writer, cfg Config) *Encoder {
	return &Encoder{w: w, cfg: cfg}
}

// Writer returns the underlying Writer for implementations that need to emit
// raw bytes directly.
func (e *Encoder) Writer() Writer { return e.w }

// Config returns the session configuration.
func (e *Encoder) Config() Config { return e.cfg }

func (e *Encoder) write(p []byte) error { return e.w.Write(p) }

// EncodeU8 writes a single raw byte. 8-bit values are never varint-widened.
func (e *Encoder) EncodeU8(v uint8) error {
	return e.write([]byte{v})
}

// EncodeU16 writes an unsigned 16-bit integer per the configured int encoding.
func (e *Encoder) EncodeU16(v uint16) error {
	if e.cfg.Ints == VarintEncoding {
		return e.encodeVarint(uint64(v))
	}
	var buf [2]byte
	e.cfg.order().PutUint16(buf[:], v)
	return e.write(buf[:])
}

// EncodeU32 writes an unsigned 32-bit integer per the configured int encoding.
func (e *Encoder) EncodeU32(v uint32) error {
	if e.cfg.Ints == VarintEncoding {
		return e.encodeVarint(uint64(v))
	}
	var buf [4]byte
	e.cfg.order().PutUint32(buf[:], v)
	return e.write(buf[:])
}

// EncodeU64 writes an unsigned 64-bit integer per the configured int encoding.
func (e *Encoder) EncodeU64(v uint64) error {
	if e.cfg.Ints == VarintEncoding {
		return e.encodeVarint(v)
	}
	var buf [8]byte
	e.cfg.order().PutUint64(buf[:], v)
	return e.write(buf[:])
}

// EncodeUint writes a platform-sized unsigned integer as a u64.
func (e *Encoder) EncodeUint(v uint) error { return e.EncodeU64(uint64(v)) }

// EncodeI8 writes a signed 8-bit integer as its two's-complement byte.
func (e *Encoder) EncodeI8(v int8) error {
	return e.write([]byte{byte(v)})
}

// EncodeI16 writes a signed 16-bit integer. Under varint encoding the value is
// zigzag-mapped first so small magnitudes of either sign stay short.
func (e *Encoder) EncodeI16(v int16) error {
	if e.cfg.Ints == VarintEncoding {
		return e.encodeVarint(zigzag(int64(v)))
	}
	var buf [2]byte
	e.cfg.order().PutUint16(buf[:], uint16(v))
	return e.write(buf[:])
}

// EncodeI32 writes a signed 32-bit integer, zigzagged under varint encoding.
func (e *Encoder) EncodeI32(v int32) error {
	if e.cfg.Ints == VarintEncoding {
		return e.encodeVarint(zigzag(int64(v)))
	}
	var buf [4]byte
	e.cfg.order().PutUint32(buf[:], uint32(v))
	return e.write(buf[:])
}

// EncodeI64 writes a signed 64-bit integer, zigzagged under varint encoding.
func (e *Encoder) EncodeI64(v int64) error {
	if e.cfg.Ints == VarintEncoding {
		return e.encodeVarint(zigzag(v))
	}
	var buf [8]byte
	e.cfg.order().PutUint64(buf[:], uint64(v))
	return e.write(buf[:])
}

// EncodeInt writes a platform-sized signed integer as an i64.
func (e *Encoder) EncodeInt(v int) error { return e.EncodeI64(int64(v)) }

// EncodeF32 writes an IEEE-754 single-precision float. Floats always occupy
// their natural width regardless of the int encoding.
func (e *Encoder) EncodeF32(v float32) error {
	var buf [4]byte
	e.cfg.order().PutUint32(buf[:], math.Float32bits(v))
	return e.write(buf[:])
}

// EncodeF64 writes an IEEE-754 double-precision float.
func (e *Encoder) EncodeF64(v float64) error {
	var buf [8]byte
	e.cfg.order().PutUint64(buf[:], math.Float64bits(v))
	return e.write(buf[:])
}

// EncodeBool writes one byte: 0 for false, 1 for true.
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.write([]byte{1})
	}
	return e.write([]byte{0})
}

// EncodeRune writes a character as its 4-byte Unicode scalar value. Surrogates
// and values beyond the Unicode range fail with ErrInvalidCharEncoding.
func (e *Encoder) EncodeRune(v rune) error {
	if v < 0 || v > utf8.MaxRune || utf16.IsSurrogate(v) {
		return ErrInvalidCharEncoding
	}
	var buf [4]byte
	e.cfg.order().PutUint32(buf[:], uint32(v))
	return e.write(buf[:])
}

// EncodeLen writes an element count or byte length as a u64.
func (e *Encoder) EncodeLen(n int) error {
	return e.EncodeU64(uint64(n))
}

// EncodeBytes writes a length-prefixed byte string.
func (e *Encoder) EncodeBytes(v []byte) error {
	if err := e.EncodeLen(len(v)); err != nil {
		return err
	}
	return e.write(v)
}

// EncodeFixedBytes writes raw bytes with no length prefix, for fixed-size
// arrays whose length is part of the type.
func (e *Encoder) EncodeFixedBytes(v []byte) error {
	return e.write(v)
}

// EncodeString writes a length-prefixed UTF-8 string.
func (e *Encoder) EncodeString(v string) error {
	if err := e.EncodeLen(len(v)); err != nil {
		return err
	}
	return e.write([]byte(v))
}

// EncodeVariant writes an enum discriminant as an unsigned 32-bit integer per
// the configured int encoding. The variant's payload, if any, follows.
func (e *Encoder) EncodeVariant(tag uint32) error {
	return e.EncodeU32(tag)
}
