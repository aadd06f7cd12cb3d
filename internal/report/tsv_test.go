package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cimkit/cim"
)

func strptr(s string) *string { return &s }

func TestWriterHeaderAndBOM(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	require.Len(t, lines, 1)
	require.Equal(t, Fields, strings.Split(lines[0], "\t"))
	require.Len(t, Fields, 27)
}

func TestWriterRow(t *testing.T) {
	updated := time.Date(2018, 6, 1, 14, 11, 46, 102794000, time.UTC)
	rec := cim.Record{
		InputFilePath:    "OBJECTS.DATA",
		Offset:           4096,
		RecordType:       cim.RecordTypeVista,
		FullPath:         strptr(`C:\Tools\proc.exe`),
		FileExtension:    strptr("exe"),
		LastUpdated:      &updated,
		FileSize:         1024,
		LaunchCount:      3,
		ProductLanguage:  1033,
		ExplorerFilename: strptr("proc.exe"),
		FolderPath:       strptr(`C:\Tools\`),
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String()[3:], "\n"), "\n")
	require.Len(t, lines, 2)
	cells := strings.Split(lines[1], "\t")
	require.Len(t, cells, len(Fields))

	byName := map[string]string{}
	for i, f := range Fields {
		byName[f] = cells[i]
	}
	require.Equal(t, "OBJECTS.DATA", byName["input_file_path"])
	require.Equal(t, "4096", byName["offset"])
	require.Equal(t, "Vista", byName["record_type"])
	require.Equal(t, `C:\Tools\proc.exe`, byName["full_path"])
	require.Equal(t, "2018-06-01 14:11:46.102794", byName["last_updated"])
	require.Equal(t, "", byName["last_joined_sccm"]) // null timestamp is an empty cell
	require.Equal(t, "1024", byName["file_size"])
	require.Equal(t, "3", byName["launch_count"])
	require.Equal(t, "1033", byName["product_language"])
	require.Equal(t, "", byName["msi_publisher"]) // null string is an empty cell
}

func TestWriterWholeSecondTimestamp(t *testing.T) {
	updated := time.Date(2018, 6, 1, 14, 11, 46, 0, time.UTC)
	rec := cim.Record{LastUpdated: &updated}

	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	require.Contains(t, buf.String(), "2018-06-01 14:11:46\t")
	require.NotContains(t, buf.String(), "14:11:46.000000")
}
