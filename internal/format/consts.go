// Package format houses low-level decoders for CCM_RecentlyUsedApps instances
// as they appear inside a WMI repository backing store (OBJECTS.DATA or
// INDEX.BTR). The goal is to keep the parsing focused and independent from the
// public API so higher-level packages can orchestrate the data in a more
// ergonomic form.
package format

// The repository stores one hash string per class definition, encoded as
// UTF-16LE text. Every CCM_RecentlyUsedApps instance embeds the hash of its
// class, which makes it a reliable carving signature even when the repository
// indices are gone.
const (
	// vistaHash identifies CCM_RecentlyUsedApps instances written by
	// Vista/Win7-era SCCM clients (64 hex chars, 128 bytes as UTF-16LE).
	vistaHash = "7C261551B264D35E30A7FA29C75283DAE04BBA71DBE8F5E553F7AD381B406DD8"

	// xpHash identifies instances written by XP-era clients
	// (32 hex chars, 64 bytes as UTF-16LE).
	xpHash = "6FA62F462BEF740F820D72D9250D743C"
)

var (
	// VistaSignature is the literal byte sequence preceding every Vista-type
	// record. Treated as immutable; never written to.
	VistaSignature = utf16le(vistaHash)

	// XPSignature is the literal byte sequence preceding every XP-type record.
	XPSignature = utf16le(xpHash)
)

// MaxRecordSize is an arbitrary safety limit for the carver. Declared record
// and properties sizes beyond it are clamped or flagged rather than trusted.
const MaxRecordSize = 65536

// utf16le expands an ASCII string to UTF-16LE bytes.
func utf16le(s string) []byte {
	b := make([]byte, 0, len(s)*2)
	for _, r := range s {
		b = append(b, byte(r), byte(r>>8))
	}
	return b
}

// RecordHeaderLayout describes the fixed section immediately following the
// class hash. Offsets within the record are never hand-computed; the layout
// is interpreted by Layout.Parse so widths cannot drift out of sync.
var RecordHeaderLayout = NewLayout("rua header",
	U64("last_updated"),
	U64("last_joined_sccm"),
	U32("record_size"),
	Pad(4), // class name offset
	Pad(1),
	Pad(5), // property state bytes
)

// OffsetTableLayout describes the property offset/value table following the
// record header. Most entries are byte offsets into the properties blob;
// the entries named in scalarValueFields hold the value itself.
var OffsetTableLayout = NewLayout("rua offset table",
	U32("folder_path"),
	U32("explorer_filename"),
	U32("last_username"),
	U32("original_filename"),
	U32("file_version"),
	U32("file_size"),
	U32("product_name"),
	U32("product_version"),
	U32("company_name"),
	U32("product_language"),
	U32("file_description"),
	U32("launch_count"),
	U32("last_used_time"),
	U32("product_code"),
	U32("additional_product_codes"),
	U32("msi_display_name"),
	U32("msi_publisher"),
	U32("msi_version"),
	U32("software_properties_hash"),
	U32("file_properties_hash"),
	Pad(4), // qualifiers list
	Pad(1), // dynamic properties flag
	I16("properties_size"),
	Pad(2),
)

// scalarValueFields are the offset-table entries that carry an inline value
// instead of a blob offset. They are removed from the offset set before any
// boundary computation.
var scalarValueFields = map[string]bool{
	"file_size":        true,
	"launch_count":     true,
	"product_language": true,
}
