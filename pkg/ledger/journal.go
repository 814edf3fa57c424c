package ledger

import (
	"fmt"
	"time"

	"github.com/scripledger/scrip/pkg/api"
)

// EventKind is the type of a ledger mutation.
type EventKind uint8

const (
	EventMint EventKind = iota + 1
	EventRetag
	EventTransfer
)

func (k EventKind) String() string {
	switch k {
	case EventMint:
		return "mint"
	case EventRetag:
		return "retag"
	case EventTransfer:
		return "transfer"
	}

	return fmt.Sprintf("EventKind(%d)", k)
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "mint":
		return EventMint, nil
	case "retag":
		return EventRetag, nil
	case "transfer":
		return EventTransfer, nil
	}

	return 0, fmt.Errorf("unknown event kind: %q", s)
}

// Entry describes one successful mutation. Queries are not journalled.
type Entry struct {
	ID   string
	Seq  uint64
	Time time.Time
	Kind EventKind

	// Meta is the interval the mutation touched, as given by the caller. For
	// a mint, it is the newly created range.
	Meta api.Meta

	// Tag is set for mints and retags. Transfers carry the tags of the
	// shares they move, which can differ across the interval, so transfer
	// entries leave it zero.
	Tag api.Tag

	// From is the sender of a transfer, zero otherwise. To is the receiver
	// of a transfer or the recipient of a mint.
	From api.OwnerID
	To   api.OwnerID
}

func (e Entry) String() string {
	switch e.Kind {
	case EventMint:
		return fmt.Sprintf("mint %s to %s tag %s", e.Meta, e.To, e.Tag)
	case EventRetag:
		return fmt.Sprintf("retag %s to %s", e.Meta, e.Tag)
	case EventTransfer:
		return fmt.Sprintf("transfer %s from %s to %s", e.Meta, e.From, e.To)
	}

	return fmt.Sprintf("%s %s", e.Kind, e.Meta)
}

// Journal receives an Entry after each successful mutation, once the new
// ranges have been persisted and installed. Implementations must not block
// for long; the ledger calls Append while holding its lock.
type Journal interface {
	Append(Entry)
}
