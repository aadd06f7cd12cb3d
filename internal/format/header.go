package format

// RecordHeader is the fixed section immediately following a class hash match.
// Timestamps are kept as raw FILETIME tick counts; conversion to calendar
// time happens during post-processing so a bad tick value can never abort
// structural decoding.
type RecordHeader struct {
	LastUpdated    uint64
	LastJoinedSCCM uint64
	RecordSize     uint32
}

// RecordHeaderSize is the wire size of the record header in bytes.
var RecordHeaderSize = RecordHeaderLayout.Size()

// DecodeRecordHeader decodes the record header from the front of b.
func DecodeRecordHeader(b []byte) (RecordHeader, error) {
	vals, err := RecordHeaderLayout.Parse(b)
	if err != nil {
		return RecordHeader{}, err
	}
	return RecordHeader{
		LastUpdated:    vals.U64("last_updated"),
		LastJoinedSCCM: vals.U64("last_joined_sccm"),
		RecordSize:     vals.U32("record_size"),
	}, nil
}
