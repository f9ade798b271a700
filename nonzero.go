package bincode

import "golang.org/x/exp/constraints"

// NonZero carries an integer that is guaranteed non-zero once constructed.
// Decoding a literal zero into one fails with ErrNonZeroIsZero.
type NonZero[T constraints.Integer] struct {
	v T
}

// NewNonZero wraps v, rejecting zero.
func NewNonZero[T constraints.Integer](v T) (NonZero[T], error) {
	if v == 0 {
		return NonZero[T]{}, ErrNonZeroIsZero
	}
	return NonZero[T]{v: v}, nil
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T { return n.v }

// EncodeNonZero writes the wrapped value with elem.
func EncodeNonZero[T constraints.Integer](e *Encoder, n NonZero[T], elem EncodeFn[T]) error {
	return elem(e, n.v)
}

// DecodeNonZero reads a value with elem and rejects zero.
func DecodeNonZero[T constraints.Integer](d *Decoder, elem DecodeFn[T]) (NonZero[T], error) {
	v, err := elem(d)
	if err != nil {
		return NonZero[T]{}, err
	}
	return NewNonZero(v)
}
