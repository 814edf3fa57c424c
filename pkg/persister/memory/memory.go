// Package memory provides a Persister which stores ranges in memory, for
// tests and for running a throwaway ledger with no store at all.
package memory

import (
	"sync"

	"github.com/scripledger/scrip/pkg/api"
)

type Persister struct {
	mu     sync.Mutex
	ranges []*api.Range
}

func New() *Persister {
	return &Persister{}
}

func (mp *Persister) GetRanges() ([]*api.Range, error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return dup(mp.ranges), nil
}

func (mp *Persister) PutRanges(ranges []*api.Range) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.ranges = dup(ranges)
	return nil
}

// dup deep-copies, so the caller and the store never alias each other's
// ranges.
func dup(in []*api.Range) []*api.Range {
	out := make([]*api.Range, len(in))
	for i, r := range in {
		c := *r
		out[i] = &c
	}

	return out
}
