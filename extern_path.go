package bincode

import "unicode/utf8"

// EncodePath writes a filesystem path as UTF-8 text. Paths containing
// non-UTF-8 bytes fail with ErrInvalidPathCharacters rather than being
// lossily converted.
func EncodePath(e *Encoder, path string) error {
	if !utf8.ValidString(path) {
		return ErrInvalidPathCharacters
	}
	return e.EncodeString(path)
}

// DecodePath reads a string and reinterprets it as a path with no further
// validation.
func DecodePath(d *Decoder) (string, error) {
	return d.DecodeString()
}
