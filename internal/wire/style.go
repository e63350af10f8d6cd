package wire

import "encoding/binary"

// ColorTag identifies how a Color's value is carried.
type ColorTag uint8

const (
	ColorNone ColorTag = 0
	ColorPal  ColorTag = 1
	ColorRGB  ColorTag = 2
)

// Color is a style color slot: none, a palette index, or an RGB triple.
type Color struct {
	Tag     ColorTag
	Index   uint8
	R, G, B uint8
}

// UnderlineKind enumerates the underline styles a Style can carry.
type UnderlineKind uint8

const (
	UnderlineNone UnderlineKind = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Flags holds the boolean/enum style attributes packed into the low
// byte (booleans) and bits 8-10 (underline kind) of a style record.
type Flags struct {
	Bold          bool
	Italic        bool
	Faint         bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
	Overline      bool
	Underline     UnderlineKind
}

// Style is the decoded form of one style-table record.
type Style struct {
	FG             Color
	BG             Color
	UnderlineColor Color
	Flags          Flags
}

// StyleTable maps a per-message styleId onto its decoded Style.
type StyleTable map[uint16]Style

// DecodeStyleTable decodes the `u16 count` + records layout of §4.1.
func DecodeStyleTable(data []byte) (StyleTable, error) {
	if len(data) < 2 {
		return nil, ErrDecode("style table too short: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint16(data)
	off := 2
	table := make(StyleTable, count)
	for i := uint16(0); i < count; i++ {
		if off+2+4*3+2 > len(data) {
			return nil, ErrDecode("style table truncated at record %d", i)
		}
		styleID := binary.LittleEndian.Uint16(data[off:])
		off += 2

		fg, n, err := decodeColor(data[off:])
		if err != nil {
			return nil, err
		}
		off += n

		bg, n, err := decodeColor(data[off:])
		if err != nil {
			return nil, err
		}
		off += n

		ul, n, err := decodeColor(data[off:])
		if err != nil {
			return nil, err
		}
		off += n

		if off+2 > len(data) {
			return nil, ErrDecode("style table truncated reading flags at record %d", i)
		}
		flagsWord := binary.LittleEndian.Uint16(data[off:])
		off += 2

		table[styleID] = Style{
			FG:             fg,
			BG:             bg,
			UnderlineColor: ul,
			Flags:          decodeFlags(flagsWord),
		}
	}
	if _, ok := table[0]; !ok {
		table[0] = Style{}
	}
	return table, nil
}

// decodeColor reads a `u8 tag` + up to 3 channel bytes color, always
// consuming a fixed 4-byte slot so records stay at a predictable stride.
func decodeColor(data []byte) (Color, int, error) {
	if len(data) < 4 {
		return Color{}, 0, ErrDecode("color field truncated")
	}
	tag := data[0]
	switch tag {
	case byte(ColorNone):
		return Color{Tag: ColorNone}, 4, nil
	case byte(ColorPal):
		return Color{Tag: ColorPal, Index: data[1]}, 4, nil
	case byte(ColorRGB):
		return Color{Tag: ColorRGB, R: data[1], G: data[2], B: data[3]}, 4, nil
	default:
		return Color{Tag: ColorNone}, 4, nil
	}
}

func decodeFlags(word uint16) Flags {
	low := byte(word)
	f := Flags{
		Bold:          low&(1<<0) != 0,
		Italic:        low&(1<<1) != 0,
		Faint:         low&(1<<2) != 0,
		Blink:         low&(1<<3) != 0,
		Inverse:       low&(1<<4) != 0,
		Invisible:     low&(1<<5) != 0,
		Strikethrough: low&(1<<6) != 0,
		Overline:      low&(1<<7) != 0,
	}
	ul := (word >> 8) & 0x7
	if ul > uint16(UnderlineDashed) {
		ul = uint16(UnderlineNone)
	}
	f.Underline = UnderlineKind(ul)
	return f
}

// MergeStyles implements the delta merge policy of §4.2: new records
// overwrite, unmentioned prior records carry forward unchanged.
func MergeStyles(prior, incoming StyleTable) StyleTable {
	merged := make(StyleTable, len(prior)+len(incoming))
	for k, v := range prior {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	if _, ok := merged[0]; !ok {
		merged[0] = Style{}
	}
	return merged
}

// StructuralHash returns a canonicalization key for a style so that two
// payload style IDs referring to the same structural style can be
// collapsed onto one stable canonical ID (spec §9).
func (s Style) StructuralHash() [3]uint64 {
	pack := func(c Color) uint64 {
		return uint64(c.Tag)<<32 | uint64(c.Index)<<24 | uint64(c.R)<<16 | uint64(c.G)<<8 | uint64(c.B)
	}
	var flagBits uint64
	if s.Flags.Bold {
		flagBits |= 1 << 0
	}
	if s.Flags.Italic {
		flagBits |= 1 << 1
	}
	if s.Flags.Faint {
		flagBits |= 1 << 2
	}
	if s.Flags.Blink {
		flagBits |= 1 << 3
	}
	if s.Flags.Inverse {
		flagBits |= 1 << 4
	}
	if s.Flags.Invisible {
		flagBits |= 1 << 5
	}
	if s.Flags.Strikethrough {
		flagBits |= 1 << 6
	}
	if s.Flags.Overline {
		flagBits |= 1 << 7
	}
	flagBits |= uint64(s.Flags.Underline) << 8
	return [3]uint64{pack(s.FG), pack(s.BG), pack(s.UnderlineColor)<<16 | flagBits}
}
