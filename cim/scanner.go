package cim

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/joshuapare/cimkit/internal/format"
)

// ScanOption configures a record scan.
type ScanOption func(*scanConfig)

type scanConfig struct {
	onDiag func(Diagnostic)
}

// WithDiagnostics delivers every non-fatal finding to fn as the scan
// progresses. Without this option diagnostics are discarded.
func WithDiagnostics(fn func(Diagnostic)) ScanOption {
	return func(cfg *scanConfig) { cfg.onDiag = fn }
}

// Records returns an iterator over every record whose class hash appears in
// the capture, in ascending offset order. The scan is lazy and single-pass:
// each record is decoded when Next is called, matches do not overlap, and a
// caller that stops consuming simply drops the iterator. A capture with no
// matches yields io.EOF immediately; that is not an error.
func (s *Store) Records(opts ...ScanOption) *RecordIterator {
	cfg := scanConfig{onDiag: func(Diagnostic) {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RecordIterator{data: s.data, path: s.path, cfg: cfg}
}

// RecordIterator walks signature matches and decodes one record per match.
// It is not safe for concurrent use; one scan is one goroutine's work.
type RecordIterator struct {
	data []byte
	path string
	pos  int
	cfg  scanConfig
}

type hit struct {
	start, end int
	typ        RecordType
}

var signatureTypes = []struct {
	sig []byte
	typ RecordType
}{
	{format.VistaSignature, RecordTypeVista},
	{format.XPSignature, RecordTypeXP},
}

// nextHit finds the earliest signature match at or after the current
// position. Plain substring search, no backtracking.
func (it *RecordIterator) nextHit() (hit, bool) {
	if it.pos >= len(it.data) {
		return hit{}, false
	}
	rest := it.data[it.pos:]
	best := -1
	var typ RecordType
	var sigLen int
	for _, st := range signatureTypes {
		if i := bytes.Index(rest, st.sig); i >= 0 && (best < 0 || i < best) {
			best, typ, sigLen = i, st.typ, len(st.sig)
		}
	}
	if best < 0 {
		return hit{}, false
	}
	return hit{start: it.pos + best, end: it.pos + best + sigLen, typ: typ}, true
}

// Next returns the next decoded record, or io.EOF once the capture is
// exhausted. A record whose header or offset table is truncated is reported
// through the diagnostic handler and skipped; the scan continues at the next
// signature match.
func (it *RecordIterator) Next() (Record, error) {
	for {
		h, ok := it.nextHit()
		if !ok {
			return Record{}, io.EOF
		}
		it.pos = h.end
		rec, err := it.decode(h)
		if err != nil {
			it.diag(DiagStructural, h.start, err.Error())
			continue
		}
		return rec, nil
	}
}

// decode assembles one Record from the bytes following a signature match.
// An error return means the fixed structures were truncated; everything
// after the offset table degrades to null fields instead of failing.
func (it *RecordIterator) decode(h hit) (Record, error) {
	rec := Record{
		InputFilePath: it.path,
		Offset:        int64(h.start),
		RecordType:    h.typ,
	}
	b := it.data[h.end:]

	hdr, err := format.DecodeRecordHeader(b)
	if err != nil {
		return Record{}, err
	}
	if hdr.RecordSize > format.MaxRecordSize {
		it.diag(DiagOversizedRecord, h.start, fmt.Sprintf(
			"declared record size %d larger than allowed max %d", hdr.RecordSize, format.MaxRecordSize))
	}
	ot, err := format.DecodeOffsetTable(b[format.RecordHeaderSize:])
	if err != nil {
		return Record{}, err
	}

	rec.LastUpdated = it.timestamp(hdr.LastUpdated, h.start)
	rec.LastJoinedSCCM = it.timestamp(hdr.LastJoinedSCCM, h.start)
	rec.FileSize = ot.FileSize
	rec.LaunchCount = ot.LaunchCount
	rec.ProductLanguage = ot.ProductLanguage

	// The properties blob starts right after the offset table and is the
	// sole source buffer for string decoding. A negative or oversized
	// declared size is clamped, and a capture that ends mid-blob just
	// yields a shorter blob; the per-property bounds checks absorb both.
	psize := int(ot.PropertiesSize)
	if psize < 0 {
		psize = 0
	}
	n := psize
	if n > format.MaxRecordSize {
		n = format.MaxRecordSize
	}
	blobStart := format.RecordHeaderSize + format.OffsetTableSize
	blobEnd := blobStart + n
	if blobStart > len(b) {
		blobStart = len(b)
	}
	if blobEnd > len(b) {
		blobEnd = len(b)
	}
	blob := b[blobStart:blobEnd]

	// Sorted ascending offsets partition the blob: property i runs from its
	// own offset to the next one, the last to properties_size.
	offs := append([]format.PropertyOffset(nil), ot.Offsets...)
	sort.SliceStable(offs, func(i, j int) bool { return offs[i].Offset < offs[j].Offset })
	for i, po := range offs {
		end := psize
		if i+1 < len(offs) {
			end = int(offs[i+1].Offset)
		}
		val, ok, derr := format.DecodeEncodedString(blob, int(po.Offset), end)
		if derr != nil {
			it.diag(DiagEncodedString, h.start, fmt.Sprintf("property %s: %v", po.Name, derr))
			continue
		}
		if ok {
			rec.setProperty(po.Name, val)
		}
	}

	rec.derive()
	return rec, nil
}

// timestamp converts raw FILETIME ticks, reporting overflow as a diagnostic.
// Zero ticks mean the field was never set and decode silently to nil.
func (it *RecordIterator) timestamp(ticks uint64, off int) *time.Time {
	t, ok := format.TimeFromFiletime(ticks)
	if !ok {
		if ticks != 0 {
			it.diag(DiagTimestampOverflow, off, fmt.Sprintf("FILETIME value %d out of range", ticks))
		}
		return nil
	}
	return &t
}

func (it *RecordIterator) diag(kind DiagKind, off int, msg string) {
	it.cfg.onDiag(Diagnostic{Kind: kind, Offset: int64(off), Path: it.path, Message: msg})
}
