package wire

import (
	"github.com/vmihailenco/msgpack/v5"
)

// typeTag is decoded first to discover the message kind before the full
// struct decode, mirroring how the teacher's raw_websocket.go peeks at
// msg["type"] before dispatching (see handleTextMessage).
type typeTag struct {
	Type string `msgpack:"type"`
}

// UnmarshalMessage decodes a msgpack document (already stripped of its
// compression header by DecodeFrame) into the concrete Message it names.
// Unknown types and malformed documents return a *DecodeError; the
// caller logs and drops per spec §7.
func UnmarshalMessage(doc []byte) (Message, error) {
	var tag typeTag
	if err := msgpack.Unmarshal(doc, &tag); err != nil {
		return nil, ErrDecode("msgpack type-tag decode failed: %v", err)
	}

	decodeInto := func(v Message) (Message, error) {
		if err := msgpack.Unmarshal(doc, v); err != nil {
			return nil, ErrDecode("msgpack decode of %q failed: %v", tag.Type, err)
		}
		return v, nil
	}

	switch tag.Type {
	case "hello":
		return decodeInto(&HelloIn{})
	case "snapshot":
		return decodeInto(&Snapshot{})
	case "delta":
		return decodeInto(&Delta{})
	case "title":
		return decodeInto(&Title{})
	case "bell":
		return decodeInto(&Bell{})
	case "toast":
		return decodeInto(&Toast{})
	case "progress":
		return decodeInto(&Progress{})
	case "shell_integration":
		return decodeInto(&ShellIntegration{})
	case "focus":
		return decodeInto(&Focus{})
	case "master_changed":
		return decodeInto(&MasterChanged{})
	case "layout":
		return decodeInto(&Layout{})
	case "pong":
		return decodeInto(&Pong{})
	case "output":
		return decodeInto(&Output{})
	case "clipboard":
		return decodeInto(&Clipboard{})
	default:
		return nil, ErrDecode("unknown message type %q", tag.Type)
	}
}
