package format

import "fmt"

// FieldKind selects the wire width and interpretation of a layout field.
type FieldKind uint8

const (
	// KindU32 is a 4-byte little-endian unsigned integer.
	KindU32 FieldKind = iota
	// KindU64 is an 8-byte little-endian unsigned integer.
	KindU64
	// KindI16 is a 2-byte little-endian signed integer.
	KindI16
	// KindPad is skipped padding of an explicit width.
	KindPad
)

// Field is one entry of a fixed binary layout.
type Field struct {
	Name string
	Kind FieldKind
	pad  int
}

// U32 declares a 4-byte unsigned field.
func U32(name string) Field { return Field{Name: name, Kind: KindU32} }

// U64 declares an 8-byte unsigned field.
func U64(name string) Field { return Field{Name: name, Kind: KindU64} }

// I16 declares a 2-byte signed field.
func I16(name string) Field { return Field{Name: name, Kind: KindI16} }

// Pad declares n bytes of skipped padding.
func Pad(n int) Field { return Field{Kind: KindPad, pad: n} }

func (f Field) width() int {
	switch f.Kind {
	case KindU32:
		return 4
	case KindU64:
		return 8
	case KindI16:
		return 2
	default:
		return f.pad
	}
}

// Layout is an ordered fixed-width binary section. It replaces hand-computed
// seek offsets: each section is declared once as a list of named fields and
// interpreted by Parse.
type Layout struct {
	name   string
	fields []Field
	size   int
}

// NewLayout builds a layout from its fields in wire order.
func NewLayout(name string, fields ...Field) Layout {
	size := 0
	for _, f := range fields {
		size += f.width()
	}
	return Layout{name: name, fields: fields, size: size}
}

// Size returns the total wire size of the layout in bytes.
func (l Layout) Size() int { return l.size }

// Fields returns the declared fields in wire order, padding included.
func (l Layout) Fields() []Field { return l.fields }

// Values holds the decoded fields of one layout, keyed by field name.
// Signed fields are stored as their raw unsigned representation; use I16
// to recover the sign.
type Values map[string]uint64

// U32 returns the named field as a uint32.
func (v Values) U32(name string) uint32 { return uint32(v[name]) }

// U64 returns the named field as a uint64.
func (v Values) U64(name string) uint64 { return v[name] }

// I16 returns the named field as an int16.
func (v Values) I16(name string) int16 { return int16(uint16(v[name])) }

// Parse decodes the layout from the front of b. The buffer must hold at
// least Size bytes; anything shorter is a truncated structure.
func (l Layout) Parse(b []byte) (Values, error) {
	if len(b) < l.size {
		return nil, fmt.Errorf("%s: %w (have %d, need %d)", l.name, ErrTruncated, len(b), l.size)
	}
	vals := make(Values, len(l.fields))
	off := 0
	for _, f := range l.fields {
		switch f.Kind {
		case KindU32:
			vals[f.Name] = uint64(ReadU32(b, off))
		case KindU64:
			vals[f.Name] = ReadU64(b, off)
		case KindI16:
			vals[f.Name] = uint64(ReadU16(b, off))
		}
		off += f.width()
	}
	return vals, nil
}
