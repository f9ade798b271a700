package bincode

import "strings"

// EncodeCString writes a C-style string as a length-prefixed byte sequence of
// its content, excluding any terminator. A value with an interior null byte
// fails with *CStringNulError.
func EncodeCString(e *Encoder, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &CStringNulError{Position: i}
	}
	return e.EncodeBytes([]byte(s))
}

// DecodeCString reads a length-prefixed byte sequence, rejecting interior
// null bytes with *CStringNulError carrying the offending position.
func DecodeCString(d *Decoder) (string, error) {
	buf, err := d.DecodeBytesBorrow()
	if err != nil {
		return "", err
	}
	for i, b := range buf {
		if b == 0 {
			return "", &CStringNulError{Position: i}
		}
	}
	return string(buf), nil
}
