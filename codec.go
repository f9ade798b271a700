// Package bincode implements a compact, configurable binary wire format.
// Values encode independently of their in-memory layout: byte order, integer
// width policy, and a decode byte budget are selected per session through a
// Config. Decoding defends against malicious length prefixes by claiming a
// container's worst-case cost against the budget before allocating, and the
// slice-backed reader supports zero-copy extraction of byte strings.
package bincode

// Encodable is implemented by types that can write themselves through an
// Encoder.
type Encodable interface {
	Encode(*Encoder) error
}

// Decodable is implemented by types that can read themselves through a
// Decoder.
type Decodable interface {
	Decode(*Decoder) error
}

// Codec is a complete, self-describing binary encoder/decoder.
type Codec interface {
	Encodable
	Decodable
}

// Marshal encodes v into a fresh byte slice under cfg.
func Marshal(v Encodable, cfg Config) ([]byte, error) {
	w := NewSliceWriter(64)
	if _, err := EncodeIntoWriter(v, w, cfg); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes v from data under cfg, returning the number of bytes
// consumed. Trailing bytes are left untouched; callers that require exact
// consumption compare the count against len(data).
func Unmarshal(v Decodable, data []byte, cfg Config) (int, error) {
	r := NewSliceReader(data)
	if err := DecodeFromReader(v, r, cfg); err != nil {
		return r.Len(), err
	}
	return r.Len(), nil
}

// EncodeIntoWriter constructs an Encoder around w and delegates to v's encode
// logic, returning the number of bytes this call wrote. On error, bytes
// already written stay in the sink; callers needing atomicity encode into an
// intermediate SliceWriter first.
func EncodeIntoWriter(v Encodable, w Writer, cfg Config) (int, error) {
	before := w.BytesWritten()
	if err := v.Encode(NewEncoder(w, cfg)); err != nil {
		return w.BytesWritten() - before, err
	}
	return w.BytesWritten() - before, nil
}

// DecodeFromReader constructs a Decoder around r and delegates to v's decode
// logic. A partially-decoded v must be discarded on error.
func DecodeFromReader(v Decodable, r Reader, cfg Config) error {
	return v.Decode(NewDecoder(r, cfg))
}

// EncodedSize runs v's encode logic against a size-counting sink, returning
// the exact encoded length without allocating output.
func EncodedSize(v Encodable, cfg Config) (int, error) {
	var w SizeWriter
	if _, err := EncodeIntoWriter(v, &w, cfg); err != nil {
		return 0, err
	}
	return w.N, nil
}

// Binary bridges a Codec to the standard library's
// encoding.BinaryMarshaler/BinaryUnmarshaler pair under a fixed Config, for
// embedding in APIs that speak the standard interfaces.
type Binary[T Codec] struct {
	V      T
	Config Config
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Binary[T]) MarshalBinary() ([]byte, error) {
	return Marshal(b.V, b.Config)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Binary[T]) UnmarshalBinary(data []byte) error {
	_, err := Unmarshal(b.V, data, b.Config)
	return err
}
