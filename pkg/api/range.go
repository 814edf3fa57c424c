package api

import (
	"fmt"
)

// Range is a contiguous run of shares which all have the same owner and the
// same tag. The ledger stores nothing finer than this; a million identical
// shares cost the same as one.
type Range struct {
	Meta  Meta
	Owner OwnerID
	Tag   Tag
}

func (r Range) String() string {
	return fmt.Sprintf("{%s %s %s}", r.Meta, r.Owner, r.Tag)
}
