package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrip.db")

	sp, err := Open(path)
	require.NoError(t, err)
	defer sp.Close()

	got, err := sp.GetRanges()
	require.NoError(t, err)
	assert.Empty(t, got)

	in := []*api.Range{
		{Meta: api.Meta{Start: 1, Stop: 11}, Owner: "alice", Tag: api.ZeroTag},
		{Meta: api.Meta{Start: 11, Stop: 21}, Owner: "bob", Tag: api.Tag{0x00, 0x01}},
	}
	require.NoError(t, sp.PutRanges(in))

	got, err = sp.GetRanges()
	require.NoError(t, err)
	assert.Equal(t, in, got)

	// Writes replace the snapshot, not append to it.
	in = in[:1]
	require.NoError(t, sp.PutRanges(in))

	got, err = sp.GetRanges()
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrip.db")

	sp, err := Open(path)
	require.NoError(t, err)

	in := []*api.Range{
		{Meta: api.Meta{Start: 1, Stop: 101}, Owner: "alice", Tag: api.Tag{0xbe, 0xef}},
	}
	require.NoError(t, sp.PutRanges(in))
	require.NoError(t, sp.Close())

	sp, err = Open(path)
	require.NoError(t, err)
	defer sp.Close()

	got, err := sp.GetRanges()
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
