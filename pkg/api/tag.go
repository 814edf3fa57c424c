package api

import (
	"encoding/hex"
	"fmt"
)

// TagSize is the width of a classification tag, in bytes.
const TagSize = 2

// Tag is an opaque fixed-width classification value attached to a range of
// shares. The ledger carries it around but never interprets it; two ranges
// can only be coalesced when their tags are equal bit for bit.
type Tag [TagSize]byte

// ZeroTag is the tag of shares minted without any classification.
var ZeroTag Tag

// ParseTag decodes a tag from a hex string, with or without an 0x prefix.
func ParseTag(s string) (Tag, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroTag, fmt.Errorf("invalid tag: %w", err)
	}

	return TagFromBytes(b)
}

// TagFromBytes converts a raw byte slice (e.g. from the wire) into a Tag. The
// slice must be exactly TagSize bytes.
func TagFromBytes(b []byte) (Tag, error) {
	if len(b) != TagSize {
		return ZeroTag, fmt.Errorf("invalid tag: need %d bytes, got %d", TagSize, len(b))
	}

	var t Tag
	copy(t[:], b)
	return t, nil
}

// Bytes returns the tag as a fresh slice, for the wire.
func (t Tag) Bytes() []byte {
	b := make([]byte, TagSize)
	copy(b, t[:])
	return b
}

func (t Tag) String() string {
	return "0x" + hex.EncodeToString(t[:])
}

// MarshalText renders the tag as hex, so JSON snapshots stay readable.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(b []byte) error {
	parsed, err := ParseTag(string(b))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
