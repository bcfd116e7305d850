package hashing

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// utf16LE is the fixed text encoding applied to password+salt before
// digesting: UTF-16 little-endian, no byte order mark.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeText converts s to UTF-16LE. Input that is not valid UTF-8 is
// rejected: the encoder would map every invalid byte to U+FFFD, and distinct
// passwords would share a digest.
func encodeText(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrEncoding)
	}
	// Encoders carry transform state; one per call.
	b, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return b, nil
}
