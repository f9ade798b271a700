package bincode

import "io"

// Writer is the byte sink an Encoder writes through. A Write call either
// accepts every byte it is given or fails; no implementation may report a
// partial write as success. BytesWritten is monotonic for the lifetime of one
// encode session and is never reset mid-operation.
type Writer interface {
	Write(p []byte) error
	BytesWritten() int
}

// IOWriter adapts an arbitrary io.Writer to the Writer contract. A failure of
// the underlying sink is reported as an *IOEncodeError carrying the byte
// offset at which the failure occurred.
type IOWriter struct {
	w io.Writer
	n int
}

var _ Writer = (*IOWriter)(nil)

// NewIOWriter wraps w. It returns ErrNilIO for a nil writer.
func NewIOWriter(w io.Writer) (*IOWriter, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	return &IOWriter{w: w}, nil
}

// Write sends p to the underlying sink, failing atomically on error.
func (w *IOWriter) Write(p []byte) error {
	n, err := w.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &IOEncodeError{Err: err, Index: w.n}
	}
	w.n += n
	return nil
}

// BytesWritten returns the total number of bytes accepted so far.
func (w *IOWriter) BytesWritten() int { return w.n }
