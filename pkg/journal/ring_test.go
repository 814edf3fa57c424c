package journal

import (
	"testing"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	r := NewRing(3)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Recent(0))

	for i := 1; i <= 5; i++ {
		r.Append(ledger.Entry{
			Kind: ledger.EventMint,
			Meta: api.Meta{Start: api.ShareID(i), Stop: api.ShareID(i + 1)},
		})
	}

	assert.Equal(t, 3, r.Len())

	got := r.Recent(0)
	require.Len(t, got, 3)

	// Newest first, and sequence numbers keep counting across the wrap.
	assert.Equal(t, uint64(5), got[0].Seq)
	assert.Equal(t, api.ShareID(5), got[0].Meta.Start)
	assert.Equal(t, uint64(4), got[1].Seq)
	assert.Equal(t, uint64(3), got[2].Seq)

	got = r.Recent(2)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(5), got[0].Seq)

	// Asking for more than is retained returns what there is.
	assert.Len(t, r.Recent(10), 3)
}

func TestLog(t *testing.T) {
	ring := NewRing(8)
	jrnl := NewLog(ring)

	jrnl.Append(ledger.Entry{Kind: ledger.EventRetag})
	require.Equal(t, 1, ring.Len())
	assert.Equal(t, ledger.EventRetag, ring.Recent(1)[0].Kind)

	// A nil sink is fine; entries just get logged.
	NewLog(nil).Append(ledger.Entry{Kind: ledger.EventMint})
}
