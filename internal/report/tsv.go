// Package report serializes decoded records to tab-delimited text for
// spreadsheet and timeline tooling.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/joshuapare/cimkit/cim"
)

// Fields is the ordered list of output columns. The order is part of the
// tool's contract; downstream parsers key on it.
var Fields = []string{
	"input_file_path",
	"offset",
	"record_type",
	"full_path",
	"file_extension",
	"last_updated",
	"last_joined_sccm",
	"file_size",
	"launch_count",
	"product_language",
	"additional_product_codes",
	"company_name",
	"explorer_filename",
	"file_description",
	"file_properties_hash",
	"file_version",
	"folder_path",
	"last_used_time",
	"last_username",
	"msi_display_name",
	"msi_publisher",
	"msi_version",
	"original_filename",
	"product_code",
	"product_name",
	"product_version",
	"software_properties_hash",
}

// utf8BOM marks the output as UTF-8 for spreadsheet applications that would
// otherwise guess a legacy codepage.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer emits one tab-delimited row per record, preceded by a UTF-8 BOM and
// a header row. Null fields become empty cells.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w and writes the BOM and header row immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := w.Write(utf8BOM); err != nil {
		return nil, err
	}
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(Fields); err != nil {
		return nil, err
	}
	return &Writer{csv: cw}, nil
}

// Write emits one record row in the Fields order.
func (w *Writer) Write(rec cim.Record) error {
	row := []string{
		rec.InputFilePath,
		strconv.FormatInt(rec.Offset, 10),
		string(rec.RecordType),
		str(rec.FullPath),
		str(rec.FileExtension),
		timestamp(rec.LastUpdated),
		timestamp(rec.LastJoinedSCCM),
		strconv.FormatUint(uint64(rec.FileSize), 10),
		strconv.FormatUint(uint64(rec.LaunchCount), 10),
		strconv.FormatUint(uint64(rec.ProductLanguage), 10),
		str(rec.AdditionalProductCodes),
		str(rec.CompanyName),
		str(rec.ExplorerFilename),
		str(rec.FileDescription),
		str(rec.FilePropertiesHash),
		str(rec.FileVersion),
		str(rec.FolderPath),
		str(rec.LastUsedTime),
		str(rec.LastUsername),
		str(rec.MsiDisplayName),
		str(rec.MsiPublisher),
		str(rec.MsiVersion),
		str(rec.OriginalFilename),
		str(rec.ProductCode),
		str(rec.ProductName),
		str(rec.ProductVersion),
		str(rec.SoftwarePropertiesHash),
	}
	return w.csv.Write(row)
}

// Flush writes buffered rows through and reports any deferred write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// timestamp renders with microsecond precision, dropping the fractional part
// when it is zero.
func timestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}
