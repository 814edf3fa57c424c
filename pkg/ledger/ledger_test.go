package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scripledger/scrip/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = api.ZeroTag
	tX = api.Tag{0x00, 0x01}
)

func TestNewEmpty(t *testing.T) {
	l := ledgerForTest(t, nil)

	assert.Equal(t, uint64(0), l.NumShares())
	assert.Equal(t, 0, l.NumRanges())
	assert.Equal(t, 0, l.Holders())
	assert.Equal(t, "", l.LogString())
	assert.NoError(t, l.Check())
}

func TestNewLoads(t *testing.T) {
	l := ledgerForTest(t, []*api.Range{
		{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: t0},
		{Meta: api.Meta{Start: 11, Stop: 21}, Owner: "bob", Tag: t0},
	})

	assert.Equal(t, uint64(20), l.NumShares())
	assert.Equal(t, 2, l.NumRanges())

	o, err := l.OwnerOf(11)
	require.NoError(t, err)
	assert.Equal(t, api.OwnerID("bob"), o)

	// Minting continues from the top of the loaded space.
	m, err := l.Mint("carol", 5, t0)
	require.NoError(t, err)
	assert.Equal(t, api.Meta{Start: 21, Stop: 26}, m)
}

func TestNewRejectsInvalid(t *testing.T) {
	examples := []struct {
		name  string
		input []*api.Range
	}{
		{
			name: "starts after one",
			input: []*api.Range{
				{Meta: api.Meta{Start: 2, Stop: 11}, Owner: "alice", Tag: t0},
			},
		},
		{
			name: "gap",
			input: []*api.Range{
				{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: t0},
				{Meta: api.Meta{Start: 12, Stop: 21}, Owner: "bob", Tag: t0},
			},
		},
		{
			name: "overlap",
			input: []*api.Range{
				{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: t0},
				{Meta: api.Meta{Start: 10, Stop: 21}, Owner: "bob", Tag: t0},
			},
		},
		{
			name: "empty range",
			input: []*api.Range{
				{Meta: api.Meta{Start: 1, Stop: 1}, Owner: "alice", Tag: t0},
			},
		},
		{
			name: "uncoalesced neighbors",
			input: []*api.Range{
				{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: t0},
				{Meta: api.Meta{Start: 11, Stop: 21}, Owner: "alice", Tag: t0},
			},
		},
	}

	for _, ex := range examples {
		t.Run(ex.name, func(t *testing.T) {
			_, err := New(&FakePersister{ranges: ex.input}, nil)
			assert.Error(t, err)
		})
	}
}

func TestMint(t *testing.T) {
	l := ledgerForTest(t, nil)

	m, err := l.Mint("alice", 100, t0)
	require.NoError(t, err)
	assert.Equal(t, api.Meta{Start: 1, Stop: 101}, m)
	assert.Equal(t, "{[1, 101) alice 0x0000}", l.LogString())

	m, err = l.Mint("bob", 50, t0)
	require.NoError(t, err)
	assert.Equal(t, api.Meta{Start: 101, Stop: 151}, m)

	// Same owner and tag as the last range, so it extends in place.
	m, err = l.Mint("bob", 50, t0)
	require.NoError(t, err)
	assert.Equal(t, api.Meta{Start: 151, Stop: 201}, m)
	assert.Equal(t, "{[1, 101) alice 0x0000} {[101, 201) bob 0x0000}", l.LogString())

	// Same owner but a different tag stays separate.
	_, err = l.Mint("bob", 10, tX)
	require.NoError(t, err)
	assert.Equal(t, "{[1, 101) alice 0x0000} {[101, 201) bob 0x0000} {[201, 211) bob 0x0001}", l.LogString())

	assert.Equal(t, uint64(210), l.NumShares())
	assert.Equal(t, 2, l.Holders())
	assert.NoError(t, l.Check())
}

func TestMintInvalidAmount(t *testing.T) {
	l := ledgerForTest(t, nil)

	_, err := l.Mint("alice", 0, t0)
	assert.ErrorIs(t, err, api.ErrInvalidAmount)
	assert.Equal(t, "", l.LogString())

	// IDs are uint64 and start at one, so one short of the max is the most
	// which can ever exist.
	_, err = l.Mint("alice", math.MaxUint64, t0)
	assert.ErrorIs(t, err, api.ErrInvalidAmount)

	_, err = l.Mint("alice", math.MaxUint64-1, t0)
	require.NoError(t, err)

	_, err = l.Mint("alice", 1, t0)
	assert.ErrorIs(t, err, api.ErrInvalidAmount)
}

// mintThree is the starting state for most of the mutation tests: thirty
// thousand shares split evenly between three owners, all with the zero tag.
func mintThree(t *testing.T) *Ledger {
	t.Helper()
	l := ledgerForTest(t, nil)

	for _, owner := range []api.OwnerID{"alice", "bob", "carol"} {
		_, err := l.Mint(owner, 10000, t0)
		require.NoError(t, err)
	}

	return l
}

func TestRetagSplitsInterior(t *testing.T) {
	l := mintThree(t)

	// Retag a window strictly inside bob's range and check his holdings
	// come back as three ranges, old tag on either side of the new one.
	require.NoError(t, l.Retag(12000, 13000, tX))

	rs, err := l.RangesOf("bob")
	require.NoError(t, err)
	assert.Equal(t, []api.Range{
		{Meta: api.Meta{Start: 10001, Stop: 12000}, Owner: "bob", Tag: t0},
		{Meta: api.Meta{Start: 12000, Stop: 13000}, Owner: "bob", Tag: tX},
		{Meta: api.Meta{Start: 13000, Stop: 20001}, Owner: "bob", Tag: t0},
	}, rs)

	assert.NoError(t, l.Check())
}

func TestRetagSpansOwners(t *testing.T) {
	l := mintThree(t)

	// The window covers all of alice and part of bob. Owners are untouched;
	// only the tag boundary moves.
	require.NoError(t, l.Retag(1, 12000, tX))
	assert.Equal(t,
		"{[1, 10001) alice 0x0001} {[10001, 12000) bob 0x0001} {[12000, 20001) bob 0x0000} {[20001, 30001) carol 0x0000}",
		l.LogString())

	// Transferring the head of bob's retagged slice to alice merges it into
	// alice's range, because owner and tag now both match across the
	// boundary. The rest of bob's holdings stay split, tags differ.
	require.NoError(t, l.Transfer("bob", "alice", 10001, 11001))
	assert.Equal(t,
		"{[1, 11001) alice 0x0001} {[11001, 12000) bob 0x0001} {[12000, 20001) bob 0x0000} {[20001, 30001) carol 0x0000}",
		l.LogString())

	assert.NoError(t, l.Check())
}

func TestRetagWholeSpace(t *testing.T) {
	l := mintThree(t)

	require.NoError(t, l.Retag(1, 30001, tX))
	assert.Equal(t,
		"{[1, 10001) alice 0x0001} {[10001, 20001) bob 0x0001} {[20001, 30001) carol 0x0001}",
		l.LogString())
	assert.NoError(t, l.Check())
}

func TestRetagRoundTrip(t *testing.T) {
	l := mintThree(t)
	before := l.Ranges()

	require.NoError(t, l.Retag(5000, 25000, tX))
	require.NoError(t, l.Retag(5000, 25000, t0))

	if diff := cmp.Diff(before, l.Ranges()); diff != "" {
		t.Errorf("retag round trip did not restore ledger:\n%s", diff)
	}
}

func TestTransferCascade(t *testing.T) {
	l := mintThree(t)

	// Carol acquires the outer thirds of bob's range, then the middle. The
	// final transfer closes both gaps at once: all three acquisitions plus
	// carol's own range collapse into one.
	require.NoError(t, l.Transfer("bob", "carol", 10001, 13001))
	require.NoError(t, l.Transfer("bob", "carol", 17001, 20001))
	assert.Equal(t,
		"{[1, 10001) alice 0x0000} {[10001, 13001) carol 0x0000} {[13001, 17001) bob 0x0000} {[17001, 30001) carol 0x0000}",
		l.LogString())

	require.NoError(t, l.Transfer("bob", "carol", 13001, 17001))
	assert.Equal(t,
		"{[1, 10001) alice 0x0000} {[10001, 30001) carol 0x0000}",
		l.LogString())

	rs, err := l.RangesOf("carol")
	require.NoError(t, err)
	assert.Len(t, rs, 1)

	// Bob is out entirely.
	_, err = l.RangesOf("bob")
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Equal(t, 2, l.Holders())
	assert.NoError(t, l.Check())
}

func TestTransferPreservesTags(t *testing.T) {
	l := mintThree(t)
	require.NoError(t, l.Retag(12000, 13000, tX))

	// Bob sends a window spanning differently-tagged shares. Each piece
	// keeps its own tag, so alice ends up holding adjacent unmerged ranges.
	require.NoError(t, l.Transfer("bob", "alice", 11000, 14000))

	rs, err := l.RangesOf("alice")
	require.NoError(t, err)
	assert.Equal(t, []api.Range{
		{Meta: api.Meta{Start: 1, Stop: 10001}, Owner: "alice", Tag: t0},
		{Meta: api.Meta{Start: 11000, Stop: 12000}, Owner: "alice", Tag: t0},
		{Meta: api.Meta{Start: 12000, Stop: 13000}, Owner: "alice", Tag: tX},
		{Meta: api.Meta{Start: 13000, Stop: 14000}, Owner: "alice", Tag: t0},
	}, rs)

	assert.NoError(t, l.Check())
}

func TestTransferToSelf(t *testing.T) {
	l := mintThree(t)
	before := l.Ranges()

	// Legal, pointless: everything coalesces straight back.
	require.NoError(t, l.Transfer("bob", "bob", 12000, 13000))

	if diff := cmp.Diff(before, l.Ranges()); diff != "" {
		t.Errorf("self-transfer changed ledger:\n%s", diff)
	}
}

func TestTransferOwnershipViolation(t *testing.T) {
	l := mintThree(t)
	before := l.Ranges()

	// The window straddles the alice/bob boundary, so bob doesn't own all
	// of it, and nothing may move.
	err := l.Transfer("bob", "carol", 9000, 11000)
	assert.ErrorIs(t, err, api.ErrOwnershipViolation)

	// Entirely inside alice's range, but bob claims to be sending it.
	err = l.Transfer("bob", "carol", 2000, 3000)
	assert.ErrorIs(t, err, api.ErrOwnershipViolation)

	if diff := cmp.Diff(before, l.Ranges()); diff != "" {
		t.Errorf("failed transfer changed ledger:\n%s", diff)
	}
}

func TestInvalidBounds(t *testing.T) {
	examples := []struct {
		name        string
		start, stop api.ShareID
	}{
		{name: "zero start", start: 0, stop: 10},
		{name: "empty window", start: 5, stop: 5},
		{name: "reversed", start: 10, stop: 5},
		{name: "stop beyond space", start: 29000, stop: 30002},
		{name: "entirely beyond space", start: 30001, stop: 30002},
	}

	for _, ex := range examples {
		t.Run(ex.name, func(t *testing.T) {
			l := mintThree(t)
			before := l.Ranges()

			err := l.Retag(ex.start, ex.stop, tX)
			assert.ErrorIs(t, err, api.ErrInvalidRange)

			err = l.Transfer("alice", "bob", ex.start, ex.stop)
			assert.ErrorIs(t, err, api.ErrInvalidRange)

			if diff := cmp.Diff(before, l.Ranges()); diff != "" {
				t.Errorf("failed call changed ledger:\n%s", diff)
			}
		})
	}
}

func TestMutationsOnEmptyLedger(t *testing.T) {
	l := ledgerForTest(t, nil)

	// With nothing minted there is no valid window at all.
	assert.ErrorIs(t, l.Retag(1, 2, tX), api.ErrInvalidRange)
	assert.ErrorIs(t, l.Transfer("alice", "bob", 1, 2), api.ErrInvalidRange)
}

func TestQueries(t *testing.T) {
	l := mintThree(t)
	require.NoError(t, l.Retag(10001, 10002, tX))

	for _, ex := range []struct {
		id    api.ShareID
		owner api.OwnerID
		tag   api.Tag
	}{
		{id: 1, owner: "alice", tag: t0},
		{id: 10000, owner: "alice", tag: t0},
		{id: 10001, owner: "bob", tag: tX},
		{id: 10002, owner: "bob", tag: t0},
		{id: 30000, owner: "carol", tag: t0},
	} {
		o, err := l.OwnerOf(ex.id)
		require.NoError(t, err)
		assert.Equal(t, ex.owner, o, "id=%d", ex.id)

		tag, err := l.TagOf(ex.id)
		require.NoError(t, err)
		assert.Equal(t, ex.tag, tag, "id=%d", ex.id)
	}

	for _, id := range []api.ShareID{0, 30001, math.MaxUint64} {
		_, err := l.OwnerOf(id)
		assert.ErrorIs(t, err, api.ErrNotFound, "id=%d", id)

		_, err = l.TagOf(id)
		assert.ErrorIs(t, err, api.ErrNotFound, "id=%d", id)
	}

	_, err := l.RangesOf("nobody")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestRangesReturnsCopies(t *testing.T) {
	l := mintThree(t)

	rs := l.Ranges()
	rs[0].Owner = "mallory"
	rs[0].Meta.Stop = 99

	o, err := l.OwnerOf(1)
	require.NoError(t, err)
	assert.Equal(t, api.OwnerID("alice"), o)
	assert.NoError(t, l.Check())
}

func TestFailedPersistLeavesLedgerUnchanged(t *testing.T) {
	pers := &FakePersister{}
	l, err := New(pers, nil)
	require.NoError(t, err)

	_, err = l.Mint("alice", 100, t0)
	require.NoError(t, err)
	_, err = l.Mint("bob", 100, t0)
	require.NoError(t, err)
	before := l.Ranges()

	pers.failPuts = true

	_, err = l.Mint("carol", 100, t0)
	assert.Error(t, err)

	err = l.Retag(50, 150, tX)
	assert.Error(t, err)

	err = l.Transfer("alice", "bob", 1, 50)
	assert.Error(t, err)

	if diff := cmp.Diff(before, l.Ranges()); diff != "" {
		t.Errorf("failed persist changed ledger:\n%s", diff)
	}
	assert.Equal(t, uint64(200), l.NumShares())
	assert.NoError(t, l.Check())

	// And the ledger isn't wedged: once the persister recovers, the same
	// mutations go through.
	pers.failPuts = false
	_, err = l.Mint("carol", 100, t0)
	assert.NoError(t, err)
}

func TestCoalesceIdempotent(t *testing.T) {
	rs := []*api.Range{
		{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: t0},
		{Meta: api.Meta{Start: 11, Stop: 21}, Owner: "alice", Tag: tX},
		{Meta: api.Meta{Start: 21, Stop: 31}, Owner: "bob", Tag: tX},
		{Meta: api.Meta{Start: 31, Stop: 41}, Owner: "alice", Tag: tX},
	}
	require.NoError(t, validate(rs))

	// Already canonical, so a full-width pass must change nothing.
	out := coalesce(append([]*api.Range{}, rs...), 0, len(rs)-1)
	assert.Equal(t, rs, out)
}

func TestJournal(t *testing.T) {
	jrnl := &FakeJournal{}
	l, err := New(&FakePersister{}, jrnl)
	require.NoError(t, err)

	_, err = l.Mint("alice", 100, t0)
	require.NoError(t, err)
	require.NoError(t, l.Retag(10, 20, tX))
	require.NoError(t, l.Transfer("alice", "bob", 50, 60))

	// Failed operations are not journalled.
	assert.Error(t, l.Transfer("carol", "bob", 50, 60))

	require.Len(t, jrnl.entries, 3)

	e := jrnl.entries[0]
	assert.Equal(t, EventMint, e.Kind)
	assert.Equal(t, api.Meta{Start: 1, Stop: 101}, e.Meta)
	assert.Equal(t, api.OwnerID("alice"), e.To)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Time.IsZero())

	e = jrnl.entries[1]
	assert.Equal(t, EventRetag, e.Kind)
	assert.Equal(t, api.Meta{Start: 10, Stop: 20}, e.Meta)
	assert.Equal(t, tX, e.Tag)

	e = jrnl.entries[2]
	assert.Equal(t, EventTransfer, e.Kind)
	assert.Equal(t, api.OwnerID("alice"), e.From)
	assert.Equal(t, api.OwnerID("bob"), e.To)
}

func TestValidateDump(t *testing.T) {
	l := mintThree(t)
	require.NoError(t, l.Retag(5, 10, tX))

	assert.NoError(t, Validate(l.Ranges()))

	assert.Error(t, Validate([]api.Range{
		{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: t0},
		{Meta: api.Meta{Start: 12, Stop: 21}, Owner: "bob", Tag: t0},
	}))
}

func ledgerForTest(t *testing.T, ranges []*api.Range) *Ledger {
	t.Helper()

	l, err := New(&FakePersister{ranges: ranges}, nil)
	require.NoError(t, err)

	return l
}

type FakePersister struct {
	ranges   []*api.Range
	failPuts bool
}

func (fp *FakePersister) GetRanges() ([]*api.Range, error) {
	return fp.ranges, nil
}

func (fp *FakePersister) PutRanges(ranges []*api.Range) error {
	if fp.failPuts {
		return errors.New("store is down")
	}

	fp.ranges = ranges
	return nil
}

type FakeJournal struct {
	entries []Entry
}

func (fj *FakeJournal) Append(e Entry) {
	fj.entries = append(fj.entries, e)
}
