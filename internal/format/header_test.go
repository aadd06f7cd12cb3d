package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeRecordHeader(t *testing.T) {
	if RecordHeaderSize != 30 {
		t.Fatalf("RecordHeaderSize = %d, want 30", RecordHeaderSize)
	}
	buf := make([]byte, RecordHeaderSize)
	binary.LittleEndian.PutUint64(buf[0:], 131725927061027940)
	binary.LittleEndian.PutUint64(buf[8:], 131601578211786410)
	binary.LittleEndian.PutUint32(buf[16:], 1234)

	hdr, err := DecodeRecordHeader(buf)
	if err != nil {
		t.Fatalf("DecodeRecordHeader: %v", err)
	}
	if hdr.LastUpdated != 131725927061027940 {
		t.Errorf("LastUpdated = %d", hdr.LastUpdated)
	}
	if hdr.LastJoinedSCCM != 131601578211786410 {
		t.Errorf("LastJoinedSCCM = %d", hdr.LastJoinedSCCM)
	}
	if hdr.RecordSize != 1234 {
		t.Errorf("RecordSize = %d, want 1234", hdr.RecordSize)
	}
}

func TestDecodeRecordHeaderTruncated(t *testing.T) {
	_, err := DecodeRecordHeader(make([]byte, RecordHeaderSize-1))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("error = %v, want ErrTruncated", err)
	}
}
