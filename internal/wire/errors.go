package wire

import "fmt"

// DecodeError reports a malformed frame, bad msgpack document, or a
// short/truncated cell/style/rowid buffer (spec §7 DECODE_ERROR). The
// caller logs it and drops the message; the stream self-heals on the
// next delta or snapshot.
type DecodeError struct {
	msg string
}

func (e *DecodeError) Error() string { return e.msg }

// ErrDecode constructs a *DecodeError with a formatted message.
func ErrDecode(format string, args ...interface{}) error {
	return &DecodeError{msg: fmt.Sprintf(format, args...)}
}
