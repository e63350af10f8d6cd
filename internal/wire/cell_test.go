package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func packCell(t *testing.T, contentTag ContentTag, contentBits uint32, styleID uint16, wide WideKind, protected, hyperlink bool) []byte {
	t.Helper()
	var lo, hi uint32
	lo |= uint32(contentTag) & 0x3
	lo |= (contentBits & 0xFFFFFF) << 2
	lo |= uint32(styleID&0x3F) << 26
	hi |= uint32(styleID>>6) & 0x3FF
	hi |= uint32(wide&0x3) << 10
	if protected {
		hi |= 1 << 12
	}
	if hyperlink {
		hi |= 1 << 13
	}
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], lo)
	binary.LittleEndian.PutUint32(buf[4:8], hi)
	return buf
}

func TestDecodeCells_Codepoint(t *testing.T) {
	data := packCell(t, ContentCodepoint, uint32('H'), 7, WideNarrow, false, false)
	cells, err := DecodeCells(data)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	require.Equal(t, rune('H'), cells[0].Codepoint)
	require.Equal(t, uint16(7), cells[0].StyleID)
	require.Equal(t, WideNarrow, cells[0].Wide)
}

func TestDecodeCells_WideStyleIDSpansBothWords(t *testing.T) {
	// styleId large enough to require the high-word bits.
	const styleID = uint16(1000) // > 0x3F (63), exercises the hi-word overflow bits
	data := packCell(t, ContentCodepoint, uint32('A'), styleID, WideWide, true, true)
	cells, err := DecodeCells(data)
	require.NoError(t, err)
	require.Equal(t, styleID, cells[0].StyleID)
	require.Equal(t, WideWide, cells[0].Wide)
	require.True(t, cells[0].Protected)
	require.True(t, cells[0].Hyperlink)
}

func TestDecodeCells_BGPalette(t *testing.T) {
	data := packCell(t, ContentBGPalette, 42, 0, WideNarrow, false, false)
	cells, err := DecodeCells(data)
	require.NoError(t, err)
	require.Equal(t, uint8(42), cells[0].Palette)
}

func TestDecodeCells_BGRGB(t *testing.T) {
	bits := uint32(0x10) | uint32(0x20)<<8 | uint32(0x30)<<16
	data := packCell(t, ContentBGRGB, bits, 0, WideNarrow, false, false)
	cells, err := DecodeCells(data)
	require.NoError(t, err)
	require.Equal(t, uint8(0x10), cells[0].R)
	require.Equal(t, uint8(0x20), cells[0].G)
	require.Equal(t, uint8(0x30), cells[0].B)
}

func TestDecodeCells_MultipleRowMajor(t *testing.T) {
	a := packCell(t, ContentCodepoint, uint32('A'), 0, WideNarrow, false, false)
	b := packCell(t, ContentCodepoint, uint32('B'), 0, WideNarrow, false, false)
	cells, err := DecodeCells(append(a, b...))
	require.NoError(t, err)
	require.Len(t, cells, 2)
	require.Equal(t, rune('A'), cells[0].Codepoint)
	require.Equal(t, rune('B'), cells[1].Codepoint)
}

func TestDecodeCells_ShortBufferErrors(t *testing.T) {
	_, err := DecodeCells([]byte{1, 2, 3})
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestDecodeRowIDs(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], 0x42)
	binary.LittleEndian.PutUint64(buf[8:16], InvalidRowID)
	ids, err := DecodeRowIDs(buf)
	require.NoError(t, err)
	require.Equal(t, []uint64{0x42, InvalidRowID}, ids)
}
