package bincode

// SliceWriter collects encoded bytes into a growable in-memory buffer. It
// never fails.
type SliceWriter struct {
	B []byte // accumulated output
}

var _ Writer = (*SliceWriter)(nil)

// NewSliceWriter creates a SliceWriter with the given initial capacity.
func NewSliceWriter(capacity int) *SliceWriter {
	return &SliceWriter{B: make([]byte, 0, capacity)}
}

// Write appends p to the buffer.
func (w *SliceWriter) Write(p []byte) error {
	w.B = append(w.B, p...)
	return nil
}

// BytesWritten returns the number of bytes accumulated so far.
func (w *SliceWriter) BytesWritten() int { return len(w.B) }

// Bytes returns the accumulated output.
func (w *SliceWriter) Bytes() []byte { return w.B }

// Reset allows the underlying byte slice to be reused.
func (w *SliceWriter) Reset() { w.B = w.B[:0] }

// SizeWriter discards every byte and only tracks the count. It is used to
// precompute an encoded length without allocating.
type SizeWriter struct {
	N int // bytes counted
}

var _ Writer = (*SizeWriter)(nil)

// Write counts p and discards it.
func (w *SizeWriter) Write(p []byte) error {
	w.N += len(p)
	return nil
}

// BytesWritten returns the number of bytes counted so far.
func (w *SizeWriter) BytesWritten() int { return w.N }
