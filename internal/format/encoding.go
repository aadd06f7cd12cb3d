package format

import "encoding/binary"

// Little-endian read helpers. The repository format is little-endian
// throughout; encoding/binary is already optimal for these widths.

// ReadU16 reads a uint16 from the buffer at the specified offset.
func ReadU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a uint32 from the buffer at the specified offset.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadU64 reads a uint64 from the buffer at the specified offset.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}
