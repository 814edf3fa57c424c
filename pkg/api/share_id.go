package api

import "fmt"

// ShareID is the index of a single share in the ledger. Shares are numbered
// from one, so zero is never a valid ID.
type ShareID uint64

// ZeroShareID is not a valid ShareID.
const ZeroShareID ShareID = 0

func (id ShareID) String() string {
	return fmt.Sprintf("%d", id)
}
