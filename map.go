package bincode

// EncodeMap writes a length prefix followed by key/value pairs in the map's
// iteration order. That order is implementation-defined and not stable across
// processes; two equal maps may produce different byte streams.
func EncodeMap[K comparable, V any](e *Encoder, m map[K]V, key EncodeFn[K], val EncodeFn[V]) error {
	if err := e.EncodeLen(len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := key(e, k); err != nil {
			return err
		}
		if err := val(e, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap reads a length prefix and that many key/value pairs, rebuilding
// the map by repeated insertion. Duplicate keys in a crafted stream silently
// collapse to the last-seen value; that is a documented non-invariant, not an
// error. Budget bookkeeping follows DecodeSlice, claiming the pair cost up
// front and releasing it per pair.
func DecodeMap[K comparable, V any](d *Decoder, key DecodeFn[K], val DecodeFn[V]) (map[K]V, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	pairSize := sizeOf[K]() + sizeOf[V]()
	if err := d.claimContainer(n, pairSize); err != nil {
		return nil, err
	}
	out := make(map[K]V, n)
	for i := 0; i < n; i++ {
		d.UnclaimBytesRead(pairSize)
		k, err := key(d)
		if err != nil {
			return nil, err
		}
		v, err := val(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// EncodeSet writes a length prefix followed by the elements in the set's
// iteration order, with the same ordering caveat as EncodeMap.
func EncodeSet[T comparable](e *Encoder, s map[T]struct{}, elem EncodeFn[T]) error {
	if err := e.EncodeLen(len(s)); err != nil {
		return err
	}
	for v := range s {
		if err := elem(e, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSet reads a length prefix and that many elements. Duplicate elements
// collapse silently, as with DecodeMap.
func DecodeSet[T comparable](d *Decoder, elem DecodeFn[T]) (map[T]struct{}, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	if err := ClaimContainerRead[T](d, n); err != nil {
		return nil, err
	}
	size := sizeOf[T]()
	out := make(map[T]struct{}, n)
	for i := 0; i < n; i++ {
		d.UnclaimBytesRead(size)
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	return out, nil
}
