package persister

import "github.com/scripledger/scrip/pkg/api"

type Persister interface {

	// GetRanges returns the ranges stored by the persister, in ID order.
	// It's called once, at ledger startup. A persister which has never
	// stored anything returns an empty slice.
	GetRanges() ([]*api.Range, error)

	// PutRanges replaces the stored ranges with the given set. The ledger
	// calls this on every mutation. Implementations must be transactional,
	// so either the whole new set is stored or the old set survives.
	PutRanges([]*api.Range) error
}
