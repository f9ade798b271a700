package bincode

import (
	"errors"
	"io"
)

// Reader is the byte source a Decoder reads through. Read fills its argument
// completely or fails; no implementation may return a partially-filled buffer
// as success. Peek returns a view of the next n unconsumed bytes without
// advancing, or false when fewer than n bytes are currently buffered; callers
// that get false fall back to Read. Consume advances past bytes previously
// obtained through Peek and must never exceed the last peeked size.
type Reader interface {
	Read(p []byte) error
	Peek(n int) ([]byte, bool)
	Consume(n int)
}

// BorrowReader is a Reader whose backing storage outlives the decode session,
// allowing zero-copy extraction of byte slices. Borrow returns a view of the
// next n bytes and consumes them; the view stays valid as long as the backing
// buffer does.
type BorrowReader interface {
	Reader
	Borrow(n int) ([]byte, error)
}

// IOReader adapts an arbitrary io.Reader to the Reader contract. Bytes served
// through Peek are buffered ahead of consumption; everything else is copied
// straight through. An IOReader cannot lend views into its source, so borrow
// decoding falls back to owned copies.
type IOReader struct {
	r   io.Reader
	buf []byte // bytes read ahead for Peek, not yet consumed
}

var _ Reader = (*IOReader)(nil)

// NewIOReader wraps r. It returns ErrNilIO for a nil reader.
func NewIOReader(r io.Reader) (*IOReader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	return &IOReader{r: r}, nil
}

// Read fills p completely or fails. An exhausted source yields an
// *UnexpectedEndError whose Additional is exactly the number of bytes still
// missing; any other source failure yields an *IODecodeError.
func (r *IOReader) Read(p []byte) error {
	// Drain the peek buffer first.
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	if n == len(p) {
		return nil
	}
	read, err := io.ReadFull(r.r, p[n:])
	if err != nil {
		missing := len(p) - n - read
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &UnexpectedEndError{Additional: missing}
		}
		return &IODecodeError{Err: err, Additional: missing}
	}
	return nil
}

// Peek returns the next n bytes without consuming them, reading ahead from
// the source as needed. It returns false when the source cannot supply n
// bytes right now; the buffered prefix stays available for later reads.
func (r *IOReader) Peek(n int) ([]byte, bool) {
	if len(r.buf) >= n {
		return r.buf[:n], true
	}
	have := len(r.buf)
	r.buf = append(r.buf, make([]byte, n-have)...)
	read, err := io.ReadFull(r.r, r.buf[have:])
	r.buf = r.buf[:have+read]
	if err != nil || len(r.buf) < n {
		return nil, false
	}
	return r.buf[:n], true
}

// Consume advances past n bytes previously obtained through Peek.
func (r *IOReader) Consume(n int) {
	r.buf = r.buf[n:]
}
