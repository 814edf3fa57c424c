// Package ledger maintains the ownership of a growing space of numbered
// shares. Shares with the same owner and tag are stored as a single range,
// so the size of the ledger scales with the number of times ownership
// changes hands, not the number of shares.
package ledger

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/persister"
)

// Ledger is an ordered set of ranges which together cover every share minted
// so far, exactly once. It's mutable; minting appends shares, and transfers
// and retags split and merge ranges as ownership boundaries move. All methods
// are safe for concurrent use.
type Ledger struct {
	pers persister.Persister
	jrnl Journal

	// ranges tiles [1, next) in ID order: no gaps, no overlaps, no empty
	// range, and no two adjacent ranges with the same owner and tag.
	ranges []*api.Range

	// next is the ID the next minted share will get. Starts at one; share
	// zero does not exist.
	next api.ShareID

	mu sync.Mutex
}

// New returns a ledger backed by the given persister, loaded with whatever
// ranges it already holds. The journal receives an entry for every mutation;
// it may be nil.
func New(pers persister.Persister, jrnl Journal) (*Ledger, error) {
	l := &Ledger{
		pers: pers,
		jrnl: jrnl,
		next: 1,
	}

	ranges, err := pers.GetRanges()
	if err != nil {
		return nil, fmt.Errorf("persister: %w", err)
	}

	log.Printf("got %d ranges from store", len(ranges))

	if err := validate(ranges); err != nil {
		return nil, fmt.Errorf("persister returned invalid ranges: %w", err)
	}

	l.ranges = ranges
	if n := len(ranges); n > 0 {
		l.next = ranges[n-1].Meta.Stop
	}

	return l, nil
}

// Mint creates amount new shares owned by owner and tagged with tag, and
// returns the range they span. IDs are assigned sequentially and never
// reused, so the new range always sits at the top of the ID space.
func (l *Ledger) Mint(owner api.OwnerID, amount uint64, tag api.Tag) (api.Meta, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount == 0 {
		return api.Meta{}, fmt.Errorf("mint zero shares: %w", api.ErrInvalidAmount)
	}
	if amount > math.MaxUint64-uint64(l.next) {
		return api.Meta{}, fmt.Errorf("mint %d shares would overflow: %w", amount, api.ErrInvalidAmount)
	}

	m := api.Meta{Start: l.next, Stop: l.next + api.ShareID(amount)}

	var out []*api.Range
	if n := len(l.ranges); n > 0 && l.ranges[n-1].Owner == owner && l.ranges[n-1].Tag == tag {
		// The new shares look just like the last range, so extend it rather
		// than appending a range which would immediately coalesce.
		out = make([]*api.Range, n)
		copy(out, l.ranges)
		out[n-1] = &api.Range{
			Meta:  api.Meta{Start: l.ranges[n-1].Meta.Start, Stop: m.Stop},
			Owner: owner,
			Tag:   tag,
		}
	} else {
		out = make([]*api.Range, len(l.ranges), len(l.ranges)+1)
		copy(out, l.ranges)
		out = append(out, &api.Range{Meta: m, Owner: owner, Tag: tag})
	}

	if err := l.install(out, m.Stop); err != nil {
		return api.Meta{}, err
	}

	l.record(Entry{
		Kind: EventMint,
		Meta: m,
		Tag:  tag,
		To:   owner,
	})

	return m, nil
}

// Retag sets the tag of every share in [start, stop), leaving owners alone.
// The interval can cut through any number of ranges and owners; ranges are
// split at its edges and re-merged wherever neighbors end up identical.
func (l *Ledger) Retag(start, stop api.ShareID, tag api.Tag) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lo, hi, err := l.window(start, stop)
	if err != nil {
		return err
	}

	out, wLo, wHi := l.carve(lo, hi, start, stop)
	for i := wLo; i <= wHi; i++ {
		out[i].Tag = tag
	}

	out = coalesce(out, wLo, wHi)

	if err := l.install(out, l.next); err != nil {
		return err
	}

	l.record(Entry{
		Kind: EventRetag,
		Meta: api.Meta{Start: start, Stop: stop},
		Tag:  tag,
	})

	return nil
}

// Transfer moves every share in [start, stop) from one owner to another,
// leaving tags alone. The sender must own the entire interval; if even one
// share in it belongs to someone else, nothing moves.
func (l *Ledger) Transfer(from, to api.OwnerID, start, stop api.ShareID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lo, hi, err := l.window(start, stop)
	if err != nil {
		return err
	}

	for i := lo; i <= hi; i++ {
		if r := l.ranges[i]; r.Owner != from {
			return fmt.Errorf("%s is owned by %s, not %s: %w", r.Meta, r.Owner, from, api.ErrOwnershipViolation)
		}
	}

	out, wLo, wHi := l.carve(lo, hi, start, stop)
	for i := wLo; i <= wHi; i++ {
		out[i].Owner = to
	}

	out = coalesce(out, wLo, wHi)

	if err := l.install(out, l.next); err != nil {
		return err
	}

	l.record(Entry{
		Kind: EventTransfer,
		Meta: api.Meta{Start: start, Stop: stop},
		From: from,
		To:   to,
	})

	return nil
}

// OwnerOf returns the owner of the given share.
func (l *Ledger) OwnerOf(id api.ShareID) (api.OwnerID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.get(id)
	if err != nil {
		return api.ZeroOwner, err
	}

	return r.Owner, nil
}

// TagOf returns the tag of the given share.
func (l *Ledger) TagOf(id api.ShareID) (api.Tag, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.get(id)
	if err != nil {
		return api.ZeroTag, err
	}

	return r.Tag, nil
}

// RangesOf returns copies of the ranges owned by the given owner, in ID
// order. An owner holding nothing at all gets ErrNotFound rather than an
// empty slice, so callers can tell an unknown owner from a known one.
func (l *Ledger) RangesOf(owner api.OwnerID) ([]api.Range, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []api.Range
	for _, r := range l.ranges {
		if r.Owner == owner {
			out = append(out, *r)
		}
	}

	if out == nil {
		return nil, fmt.Errorf("owner %s: %w", owner, api.ErrNotFound)
	}

	return out, nil
}

// Ranges returns a copy of every range in the ledger, in ID order.
func (l *Ledger) Ranges() []api.Range {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]api.Range, len(l.ranges))
	for i, r := range l.ranges {
		out[i] = *r
	}

	return out
}

// NumShares returns the total number of shares minted so far.
func (l *Ledger) NumShares() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(l.next - 1)
}

// NumRanges returns the number of ranges the ledger currently holds.
func (l *Ledger) NumRanges() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ranges)
}

// Holders returns the number of distinct owners holding at least one share.
func (l *Ledger) Holders() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	owners := map[api.OwnerID]struct{}{}
	for _, r := range l.ranges {
		owners[r.Owner] = struct{}{}
	}

	return len(owners)
}

// Check verifies the ledger invariants. Mutations preserve them, so a
// failure here means a bug, or a persister handing back corrupt state.
func (l *Ledger) Check() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return validate(l.ranges)
}

// LogString renders the whole ledger on one line, for tests and logs.
func (l *Ledger) LogString() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := make([]string, len(l.ranges))
	for i, r := range l.ranges {
		s[i] = r.String()
	}

	return strings.Join(s, " ")
}

// get returns the range containing the given share. Caller must hold the
// lock.
func (l *Ledger) get(id api.ShareID) (*api.Range, error) {
	if id < 1 || id >= l.next {
		return nil, fmt.Errorf("share %d: %w", id, api.ErrNotFound)
	}

	return l.ranges[l.find(id)], nil
}

// find returns the index of the range containing the given share, which must
// be minted. Caller must hold the lock.
func (l *Ledger) find(id api.ShareID) int {
	return sort.Search(len(l.ranges), func(i int) bool {
		return l.ranges[i].Meta.Stop > id
	})
}

// window returns the indices of the first and last ranges overlapping
// [start, stop), after checking that the interval is non-empty and entirely
// within the minted ID space. Caller must hold the lock.
func (l *Ledger) window(start, stop api.ShareID) (lo, hi int, err error) {
	if start < 1 || start >= stop || stop > l.next {
		return 0, 0, fmt.Errorf("[%d, %d): %w", start, stop, api.ErrInvalidRange)
	}

	return l.find(start), l.find(stop - 1), nil
}

// carve returns a copy of the current ranges with the edges of [start, stop)
// forced into existence, splitting the first and last overlapped ranges if
// the interval cuts through them. Every range inside the interval is a fresh
// copy, safe for the caller to mutate; wLo and wHi are their indices in out.
// Ranges outside the interval are shared with the live set and must not be
// touched. Caller must hold the lock.
func (l *Ledger) carve(lo, hi int, start, stop api.ShareID) (out []*api.Range, wLo, wHi int) {
	out = make([]*api.Range, 0, len(l.ranges)+2)
	out = append(out, l.ranges[:lo]...)

	if r := l.ranges[lo]; r.Meta.Start < start {
		out = append(out, &api.Range{
			Meta:  api.Meta{Start: r.Meta.Start, Stop: start},
			Owner: r.Owner,
			Tag:   r.Tag,
		})
	}

	wLo = len(out)
	for i := lo; i <= hi; i++ {
		r := l.ranges[i]
		out = append(out, &api.Range{
			Meta:  api.Meta{Start: max(r.Meta.Start, start), Stop: min(r.Meta.Stop, stop)},
			Owner: r.Owner,
			Tag:   r.Tag,
		})
	}
	wHi = len(out) - 1

	if r := l.ranges[hi]; r.Meta.Stop > stop {
		out = append(out, &api.Range{
			Meta:  api.Meta{Start: stop, Stop: r.Meta.Stop},
			Owner: r.Owner,
			Tag:   r.Tag,
		})
	}

	out = append(out, l.ranges[hi+1:]...)
	return out, wLo, wHi
}

// coalesce merges adjacent ranges with the same owner and tag, looking only
// at the boundaries the caller's mutation can have affected: those touching
// the fresh copies between wLo and wHi. Boundaries further out were already
// canonical, and merging never changes owner or tag, so nothing can cascade
// past the edges.
func coalesce(rs []*api.Range, wLo, wHi int) []*api.Range {
	for i := wHi; i >= wLo-1; i-- {
		if i < 0 || i+1 >= len(rs) {
			continue
		}

		a, b := rs[i], rs[i+1]
		if a.Owner != b.Owner || a.Tag != b.Tag {
			continue
		}

		rs[i] = &api.Range{
			Meta:  api.Meta{Start: a.Meta.Start, Stop: b.Meta.Stop},
			Owner: a.Owner,
			Tag:   a.Tag,
		}
		rs = append(rs[:i+1], rs[i+2:]...)
	}

	return rs
}

// install persists the given ranges, and installs them as the live set if
// that succeeds. The caller must not have mutated any range shared with the
// live set, so that on error the ledger is exactly as it was. Caller must
// hold the lock.
func (l *Ledger) install(out []*api.Range, next api.ShareID) error {
	if err := l.pers.PutRanges(out); err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	l.ranges = out
	l.next = next
	return nil
}

// record hands an entry to the journal, if there is one. Caller must hold
// the lock, so entries arrive in mutation order.
func (l *Ledger) record(e Entry) {
	if l.jrnl == nil {
		return
	}

	e.ID = uuid.NewString()
	e.Time = time.Now().UTC()
	l.jrnl.Append(e)
}

// Validate checks that the given ranges form a canonical ledger: sorted,
// starting at share one, tiling the ID space with no gaps and no overlaps,
// with no empty range and no two adjacent ranges sharing both owner and tag.
// It's exported so that anything holding a dump of the ledger (see Ranges)
// can check it received a sane one.
func Validate(rs []api.Range) error {
	ps := make([]*api.Range, len(rs))
	for i := range rs {
		ps[i] = &rs[i]
	}

	return validate(ps)
}

func validate(rs []*api.Range) error {
	if len(rs) == 0 {
		return nil
	}

	if s := rs[0].Meta.Start; s != 1 {
		return fmt.Errorf("first range starts at %d, not 1", s)
	}

	for i, r := range rs {
		if r.Meta.Start >= r.Meta.Stop {
			return fmt.Errorf("empty range %s at index %d", r.Meta, i)
		}

		if i == 0 {
			continue
		}

		prev := rs[i-1]
		if r.Meta.Start != prev.Meta.Stop {
			return fmt.Errorf("gap or overlap between %s and %s", prev.Meta, r.Meta)
		}

		if r.Owner == prev.Owner && r.Tag == prev.Tag {
			return fmt.Errorf("ranges %s and %s should be one", prev.Meta, r.Meta)
		}
	}

	return nil
}
