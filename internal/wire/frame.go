package wire

import (
	"encoding/binary"

	"github.com/golang/snappy"
)

// CompressionFlag is the single leading byte of every inbound WebSocket
// binary frame (spec §4.1/§6.1).
type CompressionFlag byte

const (
	CompressionRaw    CompressionFlag = 0
	CompressionSnappy CompressionFlag = 1
)

// DecodeFrame strips the compression-flag header from an inbound binary
// WebSocket frame and returns the msgpack document bytes ready for
// UnmarshalMessage. Compressed frames carry a varint-encoded
// uncompressed length ahead of the snappy-compressed payload.
func DecodeFrame(frame []byte) ([]byte, error) {
	if len(frame) < 1 {
		return nil, ErrDecode("empty frame")
	}
	flag := CompressionFlag(frame[0])
	payload := frame[1:]

	switch flag {
	case CompressionRaw:
		return payload, nil
	case CompressionSnappy:
		uncompressedLen, n := binary.Uvarint(payload)
		if n <= 0 {
			return nil, ErrDecode("malformed varint length prefix in compressed frame")
		}
		compressed := payload[n:]
		out := make([]byte, 0, uncompressedLen)
		decoded, err := snappy.Decode(out, compressed)
		if err != nil {
			return nil, ErrDecode("snappy decode failed: %v", err)
		}
		return decoded, nil
	default:
		return nil, ErrDecode("unknown compression flag %d", flag)
	}
}

// EncodeCompressionHeader is exposed for tests that need to build a
// synthetic inbound frame; the client never sends binary frames itself
// (outbound messages are JSON text per the legacy-compat path, §4.1).
func EncodeCompressionHeader(flag CompressionFlag, uncompressedLen int, compressed []byte) []byte {
	buf := make([]byte, 1, 1+binary.MaxVarintLen64+len(compressed))
	buf[0] = byte(flag)
	if flag == CompressionSnappy {
		var lenBuf [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(lenBuf[:], uint64(uncompressedLen))
		buf = append(buf, lenBuf[:n]...)
	}
	buf = append(buf, compressed...)
	return buf
}
