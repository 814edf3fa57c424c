package journal

import (
	"log"

	"github.com/scripledger/scrip/pkg/ledger"
)

// Log wraps another journal and writes each entry to the standard logger on
// the way through, so the process log doubles as an audit trail. The wrapped
// journal may be nil.
type Log struct {
	next ledger.Journal
}

func NewLog(next ledger.Journal) *Log {
	return &Log{next: next}
}

func (l *Log) Append(e ledger.Entry) {
	log.Printf("journal: %s", e)

	if l.next != nil {
		l.next.Append(e)
	}
}
