package format

// PropertyOffset pairs a string property name with its byte offset into the
// properties blob.
type PropertyOffset struct {
	Name   string
	Offset uint32
}

// OffsetTable is the decoded property offset/value table of one record.
// The three inline scalar entries are pulled out of the offset set here so
// that boundary computation over the blob only ever sees real offsets.
type OffsetTable struct {
	Offsets         []PropertyOffset // string properties, table order
	FileSize        uint32
	LaunchCount     uint32
	ProductLanguage uint32
	PropertiesSize  int16
}

// OffsetTableSize is the wire size of the offset table in bytes.
var OffsetTableSize = OffsetTableLayout.Size()

// DecodeOffsetTable decodes the offset table from the front of b.
func DecodeOffsetTable(b []byte) (OffsetTable, error) {
	vals, err := OffsetTableLayout.Parse(b)
	if err != nil {
		return OffsetTable{}, err
	}
	ot := OffsetTable{
		FileSize:        vals.U32("file_size"),
		LaunchCount:     vals.U32("launch_count"),
		ProductLanguage: vals.U32("product_language"),
		PropertiesSize:  vals.I16("properties_size"),
	}
	for _, f := range OffsetTableLayout.Fields() {
		if f.Kind != KindU32 || scalarValueFields[f.Name] {
			continue
		}
		ot.Offsets = append(ot.Offsets, PropertyOffset{Name: f.Name, Offset: vals.U32(f.Name)})
	}
	return ot, nil
}
