package syncengine

import "github.com/vmihailenco/msgpack/v5"

// decodeGlobalGraphemes decodes a snapshot's `graphemes` blob: a
// msgpack map from global cell index to the codepoint tail of a
// multi-codepoint grapheme cluster (spec §3 Cell.content
// CODEPOINT_GRAPHEME).
func decodeGlobalGraphemes(data []byte) (globalGraphemes, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw map[int][]rune
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return globalGraphemes(raw), nil
}

// decodeGlobalHyperlinks decodes a snapshot's `hyperlinks` blob: a
// msgpack map from global cell index to URL string.
func decodeGlobalHyperlinks(data []byte) (globalHyperlinks, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw map[int]string
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return globalHyperlinks(raw), nil
}

// decodeRowGraphemes decodes a dirty row's already row-relative
// `graphemes` blob: a msgpack map from column to codepoint tail.
func decodeRowGraphemes(data []byte) (rowGraphemes, error) {
	if len(data) == 0 {
		return rowGraphemes{}, nil
	}
	var raw map[int][]rune
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return rowGraphemes(raw), nil
}

// decodeRowHyperlinks decodes a dirty row's row-relative `hyperlinks`
// blob: a msgpack map from column to URL string.
func decodeRowHyperlinks(data []byte) (rowHyperlinks, error) {
	if len(data) == 0 {
		return rowHyperlinks{}, nil
	}
	var raw map[int]string
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return rowHyperlinks(raw), nil
}
