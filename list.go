package bincode

import "iter"

// EncodeFn encodes one element of type T. Method expressions on Encoder
// satisfy it directly, e.g. (*Encoder).EncodeU32.
type EncodeFn[T any] func(*Encoder, T) error

// DecodeFn decodes one element of type T. Method expressions on Decoder
// satisfy it directly, e.g. (*Decoder).DecodeU32.
type DecodeFn[T any] func(*Decoder) (T, error)

// EncodeSlice writes a length prefix followed by each element in order.
func EncodeSlice[T any](e *Encoder, s []T, elem EncodeFn[T]) error {
	if err := e.EncodeLen(len(s)); err != nil {
		return err
	}
	for i := range s {
		if err := elem(e, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSlice reads a length prefix and that many elements. The whole
// container's worst-case memory cost is claimed against the decode budget
// before the backing array is allocated; the reservation is then released one
// element at a time as elements are actually decoded, so a stream whose
// declared length outruns its actual bytes fails fast with ErrUnexpectedEnd
// instead of succeeding after a huge up-front allocation.
func DecodeSlice[T any](d *Decoder, elem DecodeFn[T]) ([]T, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	if err := ClaimContainerRead[T](d, n); err != nil {
		return nil, err
	}
	size := sizeOf[T]()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		d.UnclaimBytesRead(size)
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeSliceInto reads a length prefix that must equal len(dst), then decodes
// elements in place. A disagreeing prefix fails with
// *ArrayLengthMismatchError.
func DecodeSliceInto[T any](d *Decoder, dst []T, elem DecodeFn[T]) error {
	n, err := d.DecodeLen()
	if err != nil {
		return err
	}
	if n != len(dst) {
		return &ArrayLengthMismatchError{Expected: len(dst), Found: n}
	}
	return DecodeArrayInto(d, dst, elem)
}

// EncodeArray writes exactly len(s) elements back-to-back with no length
// prefix, for arrays whose length is part of the type.
func EncodeArray[T any](e *Encoder, s []T, elem EncodeFn[T]) error {
	for i := range s {
		if err := elem(e, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeArrayInto fills dst with exactly len(dst) elements, no length prefix.
func DecodeArrayInto[T any](d *Decoder, dst []T, elem DecodeFn[T]) error {
	for i := range dst {
		v, err := elem(d)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// EncodeSeq writes a length-prefixed sequence drawn from an iterator. The
// element count must be known up front: a negative count fails with
// ErrSequenceMustHaveLength, and a sequence that yields a different number of
// elements than declared fails with *ArrayLengthMismatchError.
func EncodeSeq[T any](e *Encoder, seq iter.Seq[T], count int, elem EncodeFn[T]) error {
	if count < 0 {
		return ErrSequenceMustHaveLength
	}
	if err := e.EncodeLen(count); err != nil {
		return err
	}
	n := 0
	for v := range seq {
		if n == count {
			return &ArrayLengthMismatchError{Expected: count, Found: n + 1}
		}
		if err := elem(e, v); err != nil {
			return err
		}
		n++
	}
	if n != count {
		return &ArrayLengthMismatchError{Expected: count, Found: n}
	}
	return nil
}
