package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestUnmarshalMessage_Snapshot(t *testing.T) {
	snap := Snapshot{
		PaneID: "p1",
		Gen:    10,
		Cols:   3,
		Rows:   1,
	}
	doc, err := msgpack.Marshal(struct {
		Type string `msgpack:"type"`
		Snapshot
	}{Type: "snapshot", Snapshot: snap})
	require.NoError(t, err)

	msg, err := UnmarshalMessage(doc)
	require.NoError(t, err)
	require.Equal(t, "snapshot", msg.Kind())
	got, ok := msg.(*Snapshot)
	require.True(t, ok)
	require.Equal(t, "p1", got.PaneID)
	require.Equal(t, uint32(10), got.Gen)
}

func TestUnmarshalMessage_Delta(t *testing.T) {
	delta := Delta{
		PaneID:  "p1",
		FromGen: 10,
		Gen:     11,
		DirtyRows: []DirtyRow{
			{ID: 0x42},
		},
	}
	doc, err := msgpack.Marshal(struct {
		Type string `msgpack:"type"`
		Delta
	}{Type: "delta", Delta: delta})
	require.NoError(t, err)

	msg, err := UnmarshalMessage(doc)
	require.NoError(t, err)
	got, ok := msg.(*Delta)
	require.True(t, ok)
	require.Equal(t, uint32(11), got.Gen)
	require.Len(t, got.DirtyRows, 1)
	require.Equal(t, uint64(0x42), got.DirtyRows[0].ID)
}

func TestUnmarshalMessage_UnknownTypeErrors(t *testing.T) {
	doc, err := msgpack.Marshal(map[string]interface{}{"type": "something_unknown"})
	require.NoError(t, err)
	_, err = UnmarshalMessage(doc)
	require.Error(t, err)
}

func TestUnmarshalMessage_MalformedErrors(t *testing.T) {
	_, err := UnmarshalMessage([]byte{0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}
