package memory

import (
	"testing"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	mp := New()

	got, err := mp.GetRanges()
	require.NoError(t, err)
	assert.Empty(t, got)

	in := []*api.Range{
		{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: api.ZeroTag},
		{Meta: api.Meta{Start: 11, Stop: 21}, Owner: "bob", Tag: api.Tag{0x00, 0x01}},
	}
	require.NoError(t, mp.PutRanges(in))

	got, err = mp.GetRanges()
	require.NoError(t, err)
	assert.Equal(t, in, got)

	// The store holds copies, not the caller's pointers.
	in[0].Owner = "mallory"
	got, err = mp.GetRanges()
	require.NoError(t, err)
	assert.Equal(t, api.OwnerID("alice"), got[0].Owner)
}
