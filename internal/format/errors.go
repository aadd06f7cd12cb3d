package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadEncodingFlag indicates an Encoded-String flag byte outside {0x00, 0x01}.
	ErrBadEncodingFlag = errors.New("format: unexpected Encoded-String flag")
	// ErrUnknownField indicates a layout lookup for a field the layout does not declare.
	ErrUnknownField = errors.New("format: unknown layout field")
)
