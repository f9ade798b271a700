package bincode

import (
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathRoundTrip(t *testing.T) {
	for name, cfg := range testConfigs() {
		t.Run(name, func(t *testing.T) {
			data := encodeWith(t, cfg, func(e *Encoder) error { return EncodePath(e, "test/path") })
			require.NotEmpty(t, data)

			// Size-counted length is the UTF-8 byte length plus prefix overhead.
			var sw SizeWriter
			require.NoError(t, EncodePath(NewEncoder(&sw, cfg), "test/path"))
			prefixLen := 1
			if cfg.Ints == FixedIntEncoding {
				prefixLen = 8
			}
			assert.Equal(t, len("test/path")+prefixLen, sw.N)
			assert.Equal(t, len(data), sw.N)

			got, err := DecodePath(NewDecoder(NewSliceReader(data), cfg))
			require.NoError(t, err)
			assert.Equal(t, "test/path", got)
		})
	}
}

func TestPathRoundTripBounded(t *testing.T) {
	cfg := Standard().WithLimit(256)
	data := encodeWith(t, cfg, func(e *Encoder) error { return EncodePath(e, "test/path") })
	got, err := DecodePath(NewDecoder(NewSliceReader(data), cfg))
	require.NoError(t, err)
	assert.Equal(t, "test/path", got)
}

func TestPathRejectsNonUtf8(t *testing.T) {
	err := EncodePath(NewEncoder(NewSliceWriter(0), Standard()), "bad\xff\xfepath")
	assert.ErrorIs(t, err, ErrInvalidPathCharacters)
}

func TestCString(t *testing.T) {
	cfg := Standard()

	data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeCString(e, "hello") })
	got, err := DecodeCString(NewDecoder(NewSliceReader(data), cfg))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	err = EncodeCString(NewEncoder(NewSliceWriter(0), cfg), "he\x00llo")
	require.Error(t, err)
	var nul *CStringNulError
	require.ErrorAs(t, err, &nul)
	assert.Equal(t, 2, nul.Position)

	// Interior null arriving on the wire.
	w := NewSliceWriter(0)
	require.NoError(t, NewEncoder(w, cfg).EncodeBytes([]byte{'a', 0, 'b'}))
	_, err = DecodeCString(NewDecoder(NewSliceReader(w.Bytes()), cfg))
	require.ErrorAs(t, err, &nul)
	assert.Equal(t, 1, nul.Position)
	assert.ErrorIs(t, err, ErrCStringNul)
}

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2026, time.August, 26, 12, 30, 45, 123_456_789, time.UTC)
	for name, cfg := range testConfigs() {
		t.Run(name, func(t *testing.T) {
			data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeTime(e, in) })
			got, err := DecodeTime(NewDecoder(NewSliceReader(data), cfg))
			require.NoError(t, err)
			assert.True(t, in.Equal(got))
		})
	}
}

func TestTimeBeforeEpochRejected(t *testing.T) {
	before := time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC)
	err := EncodeTime(NewEncoder(NewSliceWriter(0), Standard()), before)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSystemTime)

	var detail *InvalidSystemTimeError
	require.ErrorAs(t, err, &detail)
	assert.True(t, detail.Time.Equal(before))
}

func TestTimeDecodeRejectsBadPairs(t *testing.T) {
	cfg := Legacy()

	// Nanosecond component of a full second.
	w := NewSliceWriter(0)
	e := NewEncoder(w, cfg)
	require.NoError(t, e.EncodeU64(10))
	require.NoError(t, e.EncodeU32(1_000_000_000))
	_, err := DecodeTime(NewDecoder(NewSliceReader(w.Bytes()), cfg))
	assert.ErrorIs(t, err, ErrInvalidDuration)

	// Seconds beyond the representable range.
	w = NewSliceWriter(0)
	e = NewEncoder(w, cfg)
	require.NoError(t, e.EncodeU64(1<<63))
	require.NoError(t, e.EncodeU32(0))
	_, err = DecodeTime(NewDecoder(NewSliceReader(w.Bytes()), cfg))
	assert.ErrorIs(t, err, ErrInvalidSystemTime)

	// Seconds that fit int64 but overflow once the epoch offset is added.
	for _, secs := range []uint64{math.MaxInt64, math.MaxInt64 - 1000} {
		w = NewSliceWriter(0)
		e = NewEncoder(w, cfg)
		require.NoError(t, e.EncodeU64(secs))
		require.NoError(t, e.EncodeU32(0))
		_, err = DecodeTime(NewDecoder(NewSliceReader(w.Bytes()), cfg))
		assert.ErrorIs(t, err, ErrInvalidSystemTime, "secs=%d", secs)
	}

	// A huge but still representable count decodes intact.
	w = NewSliceWriter(0)
	e = NewEncoder(w, cfg)
	require.NoError(t, e.EncodeU64(1<<62))
	require.NoError(t, e.EncodeU32(0))
	got, err := DecodeTime(NewDecoder(NewSliceReader(w.Bytes()), cfg))
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62), got.Unix())
}

func TestDurationRoundTrip(t *testing.T) {
	cfg := Standard()
	in := 90*time.Second + 250*time.Millisecond

	data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeDuration(e, in) })
	got, err := DecodeDuration(NewDecoder(NewSliceReader(data), cfg))
	require.NoError(t, err)
	assert.Equal(t, in, got)

	err = EncodeDuration(NewEncoder(NewSliceWriter(0), cfg), -time.Second)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	// An overflowing seconds count on the wire.
	w := NewSliceWriter(0)
	e := NewEncoder(w, cfg)
	require.NoError(t, e.EncodeU64(1<<62))
	require.NoError(t, e.EncodeU32(0))
	_, err = DecodeDuration(NewDecoder(NewSliceReader(w.Bytes()), cfg))
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestAddrRoundTrip(t *testing.T) {
	addrs := []netip.Addr{
		netip.MustParseAddr("192.168.1.7"),
		netip.MustParseAddr("2001:db8::1"),
	}
	for name, cfg := range testConfigs() {
		t.Run(name, func(t *testing.T) {
			for _, in := range addrs {
				data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeAddr(e, in) })
				got, err := DecodeAddr(NewDecoder(NewSliceReader(data), cfg))
				require.NoError(t, err)
				assert.Equal(t, in, got)
			}
		})
	}
}

func TestAddrWireLayout(t *testing.T) {
	cfg := Standard()
	data := encodeWith(t, cfg, func(e *Encoder) error {
		return EncodeAddr(e, netip.MustParseAddr("1.2.3.4"))
	})
	// Tag 0 then the octets in network order.
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, data)
}

func TestAddrRejectsUnknownTag(t *testing.T) {
	_, err := DecodeAddr(NewDecoder(NewSliceReader([]byte{2}), Standard()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedVariant)

	var detail *UnexpectedVariantError
	require.ErrorAs(t, err, &detail)
	assert.EqualValues(t, 2, detail.Found)
	assert.EqualValues(t, 1, detail.Max)
}

func TestAddrRejectsZeroValue(t *testing.T) {
	err := EncodeAddr(NewEncoder(NewSliceWriter(0), Standard()), netip.Addr{})
	assert.ErrorIs(t, err, ErrInvalidAddr)
}

func TestAddrPortRoundTrip(t *testing.T) {
	in := netip.MustParseAddrPort("10.0.0.9:8080")
	for name, cfg := range testConfigs() {
		t.Run(name, func(t *testing.T) {
			data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeAddrPort(e, in) })
			got, err := DecodeAddrPort(NewDecoder(NewSliceReader(data), cfg))
			require.NoError(t, err)
			assert.Equal(t, in, got)
		})
	}
}

func TestAddrPortDropsZone(t *testing.T) {
	// The v6 zone is a deliberate, lossy simplification: dropped on encode,
	// empty after decode.
	cfg := Standard()
	in := netip.MustParseAddrPort("[fe80::1%eth0]:443")

	data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeAddrPort(e, in) })
	got, err := DecodeAddrPort(NewDecoder(NewSliceReader(data), cfg))
	require.NoError(t, err)

	assert.Empty(t, got.Addr().Zone())
	assert.Equal(t, in.Addr().WithZone(""), got.Addr())
	assert.Equal(t, in.Port(), got.Port())
}

func TestAddrPortFixedTwoBytePort(t *testing.T) {
	// The port is always exactly two bytes, even under varint encoding.
	cfg := Standard()
	in := netip.MustParseAddrPort("1.2.3.4:5")
	data := encodeWith(t, cfg, func(e *Encoder) error { return EncodeAddrPort(e, in) })
	assert.Len(t, data, 1+4+2)
	assert.Equal(t, []byte{5, 0}, data[5:], "port in little-endian, no varint")
}

func TestMutexAdapters(t *testing.T) {
	cfg := Standard()
	m := NewMutex(uint32(77))

	data, err := Marshal(encodableFunc(func(e *Encoder) error {
		return EncodeMutex(e, m, (*Encoder).EncodeU32)
	}), cfg)
	require.NoError(t, err)

	got, err := DecodeMutex(NewDecoder(NewSliceReader(data), cfg), (*Decoder).DecodeU32)
	require.NoError(t, err)
	assert.EqualValues(t, 77, got.Load())
}

func TestTryEncodeMutexFailsWhenHeld(t *testing.T) {
	m := NewMutex("held")
	m.mu.Lock()
	defer m.mu.Unlock()

	err := TryEncodeMutex(NewEncoder(NewSliceWriter(0), Standard()), m, (*Encoder).EncodeString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLockFailed)

	var detail *LockFailedError
	require.ErrorAs(t, err, &detail)
	assert.NotEmpty(t, detail.TypeName)
}

func TestRWMutexAdapters(t *testing.T) {
	cfg := Legacy()
	m := NewRWMutex([]string{"a", "b"})

	w := NewSliceWriter(0)
	err := EncodeRWMutex(NewEncoder(w, cfg), m, func(e *Encoder, v []string) error {
		return EncodeSlice(e, v, (*Encoder).EncodeString)
	})
	require.NoError(t, err)

	got, err := DecodeRWMutex(NewDecoder(NewSliceReader(w.Bytes()), cfg), func(d *Decoder) ([]string, error) {
		return DecodeSlice(d, (*Decoder).DecodeString)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Load())
}

func TestNonZero(t *testing.T) {
	cfg := Standard()

	nz, err := NewNonZero(uint16(9))
	require.NoError(t, err)

	w := NewSliceWriter(0)
	require.NoError(t, EncodeNonZero(NewEncoder(w, cfg), nz, (*Encoder).EncodeU16))

	got, err := DecodeNonZero(NewDecoder(NewSliceReader(w.Bytes()), cfg), (*Decoder).DecodeU16)
	require.NoError(t, err)
	assert.EqualValues(t, 9, got.Get())

	_, err = NewNonZero(int32(0))
	assert.ErrorIs(t, err, ErrNonZeroIsZero)

	// A literal zero on the wire.
	_, err = DecodeNonZero(NewDecoder(NewSliceReader([]byte{0}), cfg), (*Decoder).DecodeU16)
	assert.ErrorIs(t, err, ErrNonZeroIsZero)
}
