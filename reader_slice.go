package bincode

// SliceReader reads from an in-memory byte slice. It satisfies BorrowReader:
// Borrow returns views into the original slice, so decoded byte slices and
// strings can alias the input instead of copying, valid for as long as the
// caller keeps the input alive.
type SliceReader struct {
	B []byte // input
	N int    // current read position
}

var _ BorrowReader = (*SliceReader)(nil)

// NewSliceReader creates a SliceReader over b.
func NewSliceReader(b []byte) *SliceReader {
	return &SliceReader{B: b}
}

// Read fills p completely or fails with an *UnexpectedEndError reporting the
// exact number of missing bytes.
func (r *SliceReader) Read(p []byte) error {
	if len(r.B)-r.N < len(p) {
		return &UnexpectedEndError{Additional: len(p) - (len(r.B) - r.N)}
	}
	copy(p, r.B[r.N:])
	r.N += len(p)
	return nil
}

// Peek returns the next n bytes without consuming them.
func (r *SliceReader) Peek(n int) ([]byte, bool) {
	if len(r.B)-r.N < n {
		return nil, false
	}
	return r.B[r.N : r.N+n], true
}

// Consume advances past n previously peeked bytes.
func (r *SliceReader) Consume(n int) {
	r.N += n
}

// Borrow returns a view of the next n bytes and consumes them. The view
// aliases the input slice.
func (r *SliceReader) Borrow(n int) ([]byte, error) {
	if len(r.B)-r.N < n {
		return nil, &UnexpectedEndError{Additional: n - (len(r.B) - r.N)}
	}
	b := r.B[r.N : r.N+n : r.N+n]
	r.N += n
	return b, nil
}

// Len returns the number of bytes consumed so far.
func (r *SliceReader) Len() int { return r.N }

// Available returns the number of unread bytes remaining.
func (r *SliceReader) Available() int {
	if n := len(r.B) - r.N; n > 0 {
		return n
	}
	return 0
}

// Reset allows the underlying byte slice to be reused.
func (r *SliceReader) Reset() { r.N = 0 }
