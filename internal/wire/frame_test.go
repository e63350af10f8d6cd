package wire

import (
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame_Raw(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	frame := append([]byte{byte(CompressionRaw)}, payload...)
	got, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestDecodeFrame_Snappy(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")
	compressed := snappy.Encode(nil, original)
	frame := EncodeCompressionHeader(CompressionSnappy, len(original), compressed)
	got, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.Equal(t, original, got)
}

func TestDecodeFrame_EmptyErrors(t *testing.T) {
	_, err := DecodeFrame(nil)
	require.Error(t, err)
}

func TestDecodeFrame_UnknownFlag(t *testing.T) {
	_, err := DecodeFrame([]byte{0x09, 0x01})
	require.Error(t, err)
}
