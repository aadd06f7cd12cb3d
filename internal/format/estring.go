package format

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoded-String flag values per MS-WMIO 2.2.78. A compressed string stores
// one octet per character, each octet being the character's code point
// (0-255). An uncompressed string stores UTF-16LE code units. Both forms are
// zero-terminated.
const (
	FlagCompressed   = 0x00
	FlagUncompressed = 0x01
)

// DecodeEncodedString decodes the Encoded-String occupying blob[start:end).
// The boundaries come from the record's sorted offset table, so they can be
// arbitrary garbage on a false-positive match; every exit here is non-fatal.
//
// ok reports whether the property holds a value at all. A nil err with
// ok=false is normal absence (empty range, flag + terminator only, range
// outside the blob). A non-nil err means the bytes were malformed in a way
// worth a diagnostic; the property is still just null.
func DecodeEncodedString(blob []byte, start, end int) (s string, ok bool, err error) {
	// Flag plus terminator and nothing in between: declared but empty.
	if end-start == 2 {
		return "", false, nil
	}
	if start < 0 || start >= len(blob) || end-start < 2 {
		return "", false, nil
	}
	if end > len(blob) {
		end = len(blob)
	}
	flag := blob[start]
	if flag != FlagCompressed && flag != FlagUncompressed {
		return "", false, fmt.Errorf("%w: 0x%02X", ErrBadEncodingFlag, flag)
	}
	if start+1 >= end {
		return "", false, nil
	}
	data := blob[start+1 : end]

	var decoded []byte
	if flag == FlagUncompressed {
		decoded, err = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
	} else {
		decoded, err = charmap.ISO8859_1.NewDecoder().Bytes(bytes.TrimRight(data, "\x00"))
	}
	if err != nil {
		return "", false, fmt.Errorf("decode Encoded-String: %w", err)
	}
	// The range includes the zero terminator; sloppy writers pad with more.
	return strings.TrimRight(string(decoded), "\x00"), true, nil
}
