package bincode

import (
	"math"
	"time"
)

// unixEpoch is the fixed reference point timestamps are encoded against.
var unixEpoch = time.Unix(0, 0)

// EncodeTime writes a wall-clock timestamp as the duration since the Unix
// epoch: whole seconds as a u64 followed by the nanosecond remainder as a
// u32. A timestamp before the epoch fails with *InvalidSystemTimeError.
func EncodeTime(e *Encoder, t time.Time) error {
	if t.Before(unixEpoch) {
		return &InvalidSystemTimeError{Time: t}
	}
	if err := e.EncodeU64(uint64(t.Unix())); err != nil {
		return err
	}
	return e.EncodeU32(uint32(t.Nanosecond()))
}

// DecodeTime reconstructs a timestamp by adding the decoded duration to the
// epoch. A nanosecond component of a second or more fails with
// *InvalidDurationError; a second count beyond the representable range fails
// with *InvalidSystemTimeError.
func DecodeTime(d *Decoder) (time.Time, error) {
	secs, err := d.DecodeU64()
	if err != nil {
		return time.Time{}, err
	}
	nanos, err := d.DecodeU32()
	if err != nil {
		return time.Time{}, err
	}
	if nanos >= uint32(time.Second) {
		return time.Time{}, &InvalidDurationError{Secs: secs, Nanos: nanos}
	}
	if secs > math.MaxInt64 {
		return time.Time{}, &InvalidSystemTimeError{Secs: secs, Nanos: nanos}
	}
	t := time.Unix(int64(secs), int64(nanos))
	// time.Time counts seconds from year 1, not from the Unix epoch, so
	// second counts near MaxInt64 overflow its internal representation even
	// though they fit int64. Only accept values the epoch addition round-trips.
	if t.Unix() != int64(secs) || t.Before(unixEpoch) {
		return time.Time{}, &InvalidSystemTimeError{Secs: secs, Nanos: nanos}
	}
	return t, nil
}

// EncodeDuration writes a duration as whole seconds (u64) plus the nanosecond
// remainder (u32). Durations are unsigned on the wire; a negative value fails
// with ErrInvalidDuration.
func EncodeDuration(e *Encoder, v time.Duration) error {
	if v < 0 {
		return ErrInvalidDuration
	}
	if err := e.EncodeU64(uint64(v / time.Second)); err != nil {
		return err
	}
	return e.EncodeU32(uint32(v % time.Second))
}

// DecodeDuration reads a seconds/nanoseconds pair, rejecting a nanosecond
// component of a second or more, or a total that overflows the representable
// range, with *InvalidDurationError.
func DecodeDuration(d *Decoder) (time.Duration, error) {
	secs, err := d.DecodeU64()
	if err != nil {
		return 0, err
	}
	nanos, err := d.DecodeU32()
	if err != nil {
		return 0, err
	}
	if nanos >= uint32(time.Second) {
		return 0, &InvalidDurationError{Secs: secs, Nanos: nanos}
	}
	if secs > uint64(math.MaxInt64/int64(time.Second)) {
		return 0, &InvalidDurationError{Secs: secs, Nanos: nanos}
	}
	total := time.Duration(secs)*time.Second + time.Duration(nanos)
	if total < 0 {
		return 0, &InvalidDurationError{Secs: secs, Nanos: nanos}
	}
	return total, nil
}
