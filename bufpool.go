package bincode

import "sync"

// sliceWriterPool reuses intermediate encode buffers. Buffered encodes are
// frequent enough on hot paths that pooling them meaningfully reduces GC
// pressure.
var sliceWriterPool = sync.Pool{
	New: func() any {
		// A 4KB default avoids re-allocations for common payload sizes.
		return NewSliceWriter(4096)
	},
}

// EncodeBuffered encodes v into a pooled intermediate buffer and hands the
// finished bytes to w in a single Write. Unlike EncodeIntoWriter, a
// mid-encode failure leaves the sink untouched, at the cost of buffering the
// whole payload.
func EncodeBuffered(v Encodable, w Writer, cfg Config) (int, error) {
	sw := sliceWriterPool.Get().(*SliceWriter)
	sw.Reset()
	defer sliceWriterPool.Put(sw)

	if _, err := EncodeIntoWriter(v, sw, cfg); err != nil {
		return 0, err
	}
	if err := w.Write(sw.Bytes()); err != nil {
		return 0, err
	}
	return sw.BytesWritten(), nil
}
