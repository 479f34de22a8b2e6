// Package encoding converts ID3 frame text between the three historical tag
// encodings (Latin-1, UTF-16 with optional BOM, UTF-8) and normalized UTF-8.
package encoding

import (
	"bytes"
	"unicode/utf8"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encoding bytes as they appear in ID3v2 frame bodies.
const (
	Latin1  byte = 0x00 // ISO-8859-1
	UTF16   byte = 0x01 // UTF-16 with byte order mark
	UTF16BE byte = 0x02 // UTF-16 big-endian, no BOM
	UTF8    byte = 0x03 // UTF-8
)

// Decoders and encoders carry transform state, so a fresh one is created
// per call; the Encoding values themselves are immutable and shared.
var (
	latin1  = charmap.ISO8859_1
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// Decode converts b, interpreted under the given encoding byte, to UTF-8.
// Decoding is best-effort: malformed input yields an empty or partially
// decoded string, never an error. Unrecognized encoding bytes fall back
// to Latin-1.
func Decode(enc byte, b []byte) string {
	if len(b) == 0 {
		return ""
	}

	switch enc {
	case UTF16:
		return decodeUTF16BOM(b)
	case UTF16BE:
		return decodeUTF16(b, unicode.BigEndian)
	case UTF8:
		return string(b)
	default:
		return DecodeLatin1(b)
	}
}

// DecodeLatin1 converts ISO-8859-1 bytes to UTF-8.
func DecodeLatin1(b []byte) string {
	s, err := latin1.NewDecoder().Bytes(b)
	if err != nil {
		// ISO-8859-1 maps every byte; this cannot happen.
		return string(b)
	}
	return string(s)
}

// decodeUTF16BOM decodes UTF-16 text, inspecting the first two bytes for a
// byte order mark. FF FE selects little-endian, FE FF big-endian; without a
// BOM the text is assumed big-endian and nothing is stripped.
func decodeUTF16BOM(b []byte) string {
	if len(b) < 2 {
		return ""
	}

	switch {
	case b[0] == 0xFF && b[1] == 0xFE:
		return decodeUTF16(b[2:], unicode.LittleEndian)
	case b[0] == 0xFE && b[1] == 0xFF:
		return decodeUTF16(b[2:], unicode.BigEndian)
	default:
		return decodeUTF16(b, unicode.BigEndian)
	}
}

func decodeUTF16(b []byte, endian unicode.Endianness) string {
	// A trailing half code unit is truncated.
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return ""
	}

	enc := utf16BE
	if endian == unicode.LittleEndian {
		enc = utf16LE
	}

	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(s)
}

// EncodeLatin1 converts UTF-8 text to ISO-8859-1. Runes outside the Latin-1
// range are replaced with the encoding's substitute character.
func EncodeLatin1(s string) []byte {
	enc := xencoding.ReplaceUnsupported(latin1.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}

// IsASCII reports whether s contains only 7-bit characters, in which case it
// can be written as Latin-1 without loss.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// TerminatorSize returns the width of the NUL terminator for the encoding:
// two bytes for the UTF-16 forms, one byte otherwise.
func TerminatorSize(enc byte) int {
	if enc == UTF16 || enc == UTF16BE {
		return 2
	}
	return 1
}

// Cut splits b at the first NUL terminator valid for the encoding and
// returns the field before it and the remainder after it. For UTF-16 the
// terminator must be a NUL-NUL pair aligned to a character boundary; a lone
// NUL inside a code unit does not terminate the field. If no terminator is
// found, the whole input is the field and the remainder is nil.
func Cut(b []byte, enc byte) (field, rest []byte) {
	if TerminatorSize(enc) == 2 {
		for i := 0; i+1 < len(b); i += 2 {
			if b[i] == 0 && b[i+1] == 0 {
				return b[:i], b[i+2:]
			}
		}
		return b, nil
	}

	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i], b[i+1:]
	}
	return b, nil
}
