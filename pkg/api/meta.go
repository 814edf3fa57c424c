package api

import (
	"fmt"
)

// Meta is the static half of a range of shares: the interval of IDs it spans.
// Start is inclusive, Stop is exclusive, so adjacent ranges share a boundary
// and the whole ledger can be tiled with no gaps.
type Meta struct {
	Start ShareID // inclusive
	Stop  ShareID // exclusive
}

func (m Meta) String() string {
	return fmt.Sprintf("[%d, %d)", m.Start, m.Stop)
}

// Contains returns whether the given share falls inside this range.
func (m Meta) Contains(id ShareID) bool {
	return id >= m.Start && id < m.Stop
}

// Len returns the number of shares in the range.
func (m Meta) Len() uint64 {
	if m.Stop < m.Start {
		return 0
	}

	return uint64(m.Stop - m.Start)
}
