package cim

import "fmt"

// DiagKind classifies a non-fatal finding reported during a scan.
type DiagKind int

const (
	// DiagStructural reports a truncated header or offset table; the record
	// was skipped and scanning resumed at the next signature match.
	DiagStructural DiagKind = iota
	// DiagOversizedRecord reports a declared record size above the safety
	// cap; decoding continued regardless.
	DiagOversizedRecord
	// DiagEncodedString reports an unexpected encoding flag or a decode
	// failure for one property; that property is null.
	DiagEncodedString
	// DiagTimestampOverflow reports a FILETIME tick count outside the
	// representable range; the timestamp is null.
	DiagTimestampOverflow
)

func (k DiagKind) String() string {
	switch k {
	case DiagStructural:
		return "structural"
	case DiagOversizedRecord:
		return "oversized-record"
	case DiagEncodedString:
		return "encoded-string"
	case DiagTimestampOverflow:
		return "timestamp-overflow"
	default:
		return "unknown"
	}
}

// Diagnostic is one non-fatal finding. Offset is the byte position of the
// triggering signature match and Path the identity of the source capture, so
// an analyst can go back and inspect the raw bytes by hand.
type Diagnostic struct {
	Kind    DiagKind
	Offset  int64
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at offset %d in %s", d.Kind, d.Message, d.Offset, d.Path)
}
