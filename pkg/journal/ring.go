// Package journal provides sinks for the ledger's mutation log: a bounded
// in-memory ring for the debug interface, and a decorator which copies
// entries to the process log.
package journal

import (
	"sync"

	"github.com/scripledger/scrip/pkg/ledger"
)

// Ring retains the most recent entries in a fixed-size buffer. Once full,
// each append drops the oldest entry. Sequence numbers keep counting up, so
// a reader can tell when it has missed some.
type Ring struct {
	mu      sync.Mutex
	entries []ledger.Entry
	head    int
	count   int
	seq     uint64
}

// NewRing returns a ring which retains the last capacity entries.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}

	return &Ring{
		entries: make([]ledger.Entry, capacity),
	}
}

// Append implements ledger.Journal. Entries are numbered in arrival order,
// starting at one.
func (r *Ring) Append(e ledger.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	e.Seq = r.seq

	r.entries[r.head] = e
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}
}

// Recent returns up to n entries, newest first. Zero (or anything bigger
// than the buffer) means everything retained.
func (r *Ring) Recent(n int) []ledger.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > r.count {
		n = r.count
	}

	out := make([]ledger.Entry, n)
	for i := range out {
		out[i] = r.entries[(r.head-1-i+len(r.entries))%len(r.entries)]
	}

	return out
}

// Len returns the number of entries currently retained.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
