package cim

import (
	"strings"
	"time"
)

// RecordType identifies which SCCM client generation wrote a record. It is
// derived purely from the length of the class hash that matched.
type RecordType string

const (
	RecordTypeVista RecordType = "Vista"
	RecordTypeXP    RecordType = "XP"
)

// Record is one decoded CCM_RecentlyUsedApps instance. The shape is fixed:
// every property the class declares is present as a field, and absence is
// expressed as nil, not as an error. Pointer fields are null when the record
// did not carry the property or its bytes could not be decoded.
type Record struct {
	InputFilePath string
	Offset        int64
	RecordType    RecordType

	// Derived during post-processing.
	FullPath      *string
	FileExtension *string

	LastUpdated    *time.Time
	LastJoinedSCCM *time.Time

	// Inline scalar values from the offset table.
	FileSize        uint32
	LaunchCount     uint32
	ProductLanguage uint32

	AdditionalProductCodes *string
	CompanyName            *string
	ExplorerFilename       *string
	FileDescription        *string
	FilePropertiesHash     *string
	FileVersion            *string
	FolderPath             *string
	LastUsedTime           *string
	LastUsername           *string
	MsiDisplayName         *string
	MsiPublisher           *string
	MsiVersion             *string
	OriginalFilename       *string
	ProductCode            *string
	ProductName            *string
	ProductVersion         *string
	SoftwarePropertiesHash *string
}

// setProperty assigns a decoded string property by its offset-table name.
func (r *Record) setProperty(name, value string) {
	v := &value
	switch name {
	case "additional_product_codes":
		r.AdditionalProductCodes = v
	case "company_name":
		r.CompanyName = v
	case "explorer_filename":
		r.ExplorerFilename = v
	case "file_description":
		r.FileDescription = v
	case "file_properties_hash":
		r.FilePropertiesHash = v
	case "file_version":
		r.FileVersion = v
	case "folder_path":
		r.FolderPath = v
	case "last_used_time":
		r.LastUsedTime = v
	case "last_username":
		r.LastUsername = v
	case "msi_display_name":
		r.MsiDisplayName = v
	case "msi_publisher":
		r.MsiPublisher = v
	case "msi_version":
		r.MsiVersion = v
	case "original_filename":
		r.OriginalFilename = v
	case "product_code":
		r.ProductCode = v
	case "product_name":
		r.ProductName = v
	case "product_version":
		r.ProductVersion = v
	case "software_properties_hash":
		r.SoftwarePropertiesHash = v
	}
}

// derive fills FullPath and FileExtension from the decoded properties.
func (r *Record) derive() {
	folder := deref(r.FolderPath)
	name := deref(r.ExplorerFilename)
	if r.FolderPath != nil || r.ExplorerFilename != nil {
		sep := `\`
		if strings.HasSuffix(folder, `\`) {
			sep = ""
		}
		full := folder + sep + name
		r.FullPath = &full
	}
	if ext := fileExtension(name); ext != "" {
		r.FileExtension = &ext
	}
}

// fileExtension returns the lowercase trailing extension of name without its
// dot, or "" when there is none. Leading dots are not extension separators.
func fileExtension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 || i == len(trimmed)-1 {
		return ""
	}
	return strings.ToLower(trimmed[i+1:])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
