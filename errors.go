package bincode

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for variants that carry no payload. Variants with payload are
// typed structs below; each struct matches its sentinel through errors.Is so
// callers can test either way.
var (
	// ErrNilIO indicates that an Encoder/Decoder was built around a nil
	// io.Reader/io.Writer.
	ErrNilIO = errors.New("bincode: nil io.Reader/io.Writer")

	// ErrUnexpectedEnd indicates the input ended before all requested bytes
	// were available.
	ErrUnexpectedEnd = errors.New("bincode: unexpected end of input")

	// ErrLimitExceeded indicates the configured decode byte limit was
	// exhausted, usually by a malicious or corrupt length prefix.
	ErrLimitExceeded = errors.New("bincode: decode limit exceeded")

	// ErrInvalidIntegerType indicates a decoded integer does not fit the type
	// it is being decoded into, or carries an unsupported width marker.
	ErrInvalidIntegerType = errors.New("bincode: invalid integer type")

	// ErrInvalidBooleanValue indicates a boolean byte other than 0 or 1.
	ErrInvalidBooleanValue = errors.New("bincode: invalid boolean value")

	// ErrInvalidCharEncoding indicates a char value that is not a valid
	// Unicode scalar.
	ErrInvalidCharEncoding = errors.New("bincode: invalid char encoding")

	// ErrUnexpectedVariant indicates an enum discriminant outside the
	// declared set.
	ErrUnexpectedVariant = errors.New("bincode: unexpected variant")

	// ErrEmptyEnum indicates an attempt to decode a variant of an enum that
	// declares zero variants.
	ErrEmptyEnum = errors.New("bincode: cannot decode variant of empty enum")

	// ErrNonZeroIsZero indicates a non-zero typed field decoded a literal zero.
	ErrNonZeroIsZero = errors.New("bincode: non-zero type decoded zero")

	// ErrOutsideUsizeRange indicates a length or count that exceeds what int
	// can represent on this platform.
	ErrOutsideUsizeRange = errors.New("bincode: length outside usize range")

	// ErrArrayLengthMismatch indicates a declared element count that disagrees
	// with the fixed size of the destination.
	ErrArrayLengthMismatch = errors.New("bincode: array length mismatch")

	// ErrUtf8 indicates invalid UTF-8 in a decoded string.
	ErrUtf8 = errors.New("bincode: invalid utf-8")

	// ErrCStringNul indicates an interior null byte in a decoded C string.
	ErrCStringNul = errors.New("bincode: interior null byte in c string")

	// ErrInvalidDuration indicates a decoded seconds/nanoseconds pair outside
	// the valid range.
	ErrInvalidDuration = errors.New("bincode: invalid duration")

	// ErrInvalidSystemTime indicates a timestamp outside the representable
	// range (before the epoch on encode, overflow on decode).
	ErrInvalidSystemTime = errors.New("bincode: invalid system time")

	// ErrInvalidPathCharacters indicates a path that is not valid UTF-8.
	ErrInvalidPathCharacters = errors.New("bincode: path contains non-utf-8 characters")

	// ErrLockFailed indicates a synchronization guard that could not be
	// acquired for a non-blocking encode.
	ErrLockFailed = errors.New("bincode: failed to acquire lock")

	// ErrSequenceMustHaveLength indicates a sequence encode was attempted
	// without a known element count.
	ErrSequenceMustHaveLength = errors.New("bincode: sequence must have a known length")
)

// IOEncodeError reports a failure of the underlying byte sink. Index is the
// writer's byte offset before the failing write, preserved for diagnostics.
type IOEncodeError struct {
	Err   error
	Index int
}

func (e *IOEncodeError) Error() string {
	return fmt.Sprintf("bincode: write failed at offset %d: %v", e.Index, e.Err)
}

func (e *IOEncodeError) Unwrap() error { return e.Err }

// IODecodeError reports a failure of the underlying byte source. Additional is
// the number of bytes still needed when the failure occurred.
type IODecodeError struct {
	Err        error
	Additional int
}

func (e *IODecodeError) Error() string {
	return fmt.Sprintf("bincode: read failed, %d bytes still needed: %v", e.Additional, e.Err)
}

func (e *IODecodeError) Unwrap() error { return e.Err }

// UnexpectedEndError reports an exhausted input. Additional is exactly the
// number of bytes that were still needed.
type UnexpectedEndError struct {
	Additional int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("bincode: unexpected end of input, %d more bytes needed", e.Additional)
}

func (e *UnexpectedEndError) Is(target error) bool { return target == ErrUnexpectedEnd }

// InvalidIntegerTypeError reports a decoded integer that does not fit the
// destination type.
type InvalidIntegerTypeError struct {
	Expected string
	Found    uint64
}

func (e *InvalidIntegerTypeError) Error() string {
	return fmt.Sprintf("bincode: value %d does not fit %s", e.Found, e.Expected)
}

func (e *InvalidIntegerTypeError) Is(target error) bool { return target == ErrInvalidIntegerType }

// InvalidBooleanValueError reports a boolean byte other than 0 or 1.
type InvalidBooleanValueError struct {
	Found byte
}

func (e *InvalidBooleanValueError) Error() string {
	return fmt.Sprintf("bincode: invalid boolean byte 0x%02x", e.Found)
}

func (e *InvalidBooleanValueError) Is(target error) bool { return target == ErrInvalidBooleanValue }

// UnexpectedVariantError reports an enum discriminant outside the declared
// range [Min, Max].
type UnexpectedVariantError struct {
	TypeName string
	Min, Max uint32
	Found    uint32
}

func (e *UnexpectedVariantError) Error() string {
	return fmt.Sprintf("bincode: unexpected variant %d for %s, allowed range [%d, %d]",
		e.Found, e.TypeName, e.Min, e.Max)
}

func (e *UnexpectedVariantError) Is(target error) bool { return target == ErrUnexpectedVariant }

// OutsideUsizeRangeError reports a length that int cannot represent.
type OutsideUsizeRangeError struct {
	Found uint64
}

func (e *OutsideUsizeRangeError) Error() string {
	return fmt.Sprintf("bincode: length %d outside usize range", e.Found)
}

func (e *OutsideUsizeRangeError) Is(target error) bool { return target == ErrOutsideUsizeRange }

// ArrayLengthMismatchError reports a declared count that disagrees with the
// destination's fixed size.
type ArrayLengthMismatchError struct {
	Expected int
	Found    int
}

func (e *ArrayLengthMismatchError) Error() string {
	return fmt.Sprintf("bincode: array length mismatch, expected %d elements, found %d",
		e.Expected, e.Found)
}

func (e *ArrayLengthMismatchError) Is(target error) bool { return target == ErrArrayLengthMismatch }

// CStringNulError reports an interior null byte at Position.
type CStringNulError struct {
	Position int
}

func (e *CStringNulError) Error() string {
	return fmt.Sprintf("bincode: interior null byte at position %d", e.Position)
}

func (e *CStringNulError) Is(target error) bool { return target == ErrCStringNul }

// InvalidDurationError reports an out-of-range seconds/nanoseconds pair.
type InvalidDurationError struct {
	Secs  uint64
	Nanos uint32
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("bincode: invalid duration %ds %dns", e.Secs, e.Nanos)
}

func (e *InvalidDurationError) Is(target error) bool { return target == ErrInvalidDuration }

// InvalidSystemTimeError reports a timestamp outside the representable range.
// On encode, Time is the offending pre-epoch value; on decode, Secs/Nanos hold
// the duration that overflowed.
type InvalidSystemTimeError struct {
	Time  time.Time
	Secs  uint64
	Nanos uint32
}

func (e *InvalidSystemTimeError) Error() string {
	if !e.Time.IsZero() {
		return fmt.Sprintf("bincode: system time %v predates the unix epoch", e.Time)
	}
	return fmt.Sprintf("bincode: duration %ds %dns overflows the representable time range", e.Secs, e.Nanos)
}

func (e *InvalidSystemTimeError) Is(target error) bool { return target == ErrInvalidSystemTime }

// LockFailedError reports a guard that could not be acquired.
type LockFailedError struct {
	TypeName string
}

func (e *LockFailedError) Error() string {
	return fmt.Sprintf("bincode: failed to acquire lock on %s", e.TypeName)
}

func (e *LockFailedError) Is(target error) bool { return target == ErrLockFailed }
