package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/discovery/mock"
	"github.com/scripledger/scrip/pkg/journal"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/scripledger/scrip/pkg/persister/memory"
	"github.com/scripledger/scrip/pkg/server"
)

func TestRoundTrip(t *testing.T) {
	h := setup(t)

	m, err := h.c.Mint(h.ctx, "alice", 100, api.ZeroTag)
	require.NoError(t, err)
	assert.Equal(t, api.Meta{Start: 1, Stop: 101}, m)

	err = h.c.Retag(h.ctx, 11, 21, api.Tag{0x00, 0x01})
	require.NoError(t, err)

	err = h.c.Transfer(h.ctx, "alice", "bob", 91, 101)
	require.NoError(t, err)

	owner, err := h.c.OwnerOf(h.ctx, 95)
	require.NoError(t, err)
	assert.Equal(t, api.OwnerID("bob"), owner)

	tag, err := h.c.TagOf(h.ctx, 15)
	require.NoError(t, err)
	assert.Equal(t, api.Tag{0x00, 0x01}, tag)

	rs, err := h.c.RangesOf(h.ctx, "bob")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, api.Meta{Start: 91, Stop: 101}, rs[0].Meta)
}

// Errors should come back from the server indistinguishable from the errors
// a local ledger returns: same sentinel, same message.
func TestSentinelsSurviveTheWire(t *testing.T) {
	h := setup(t)

	_, err := h.c.Mint(h.ctx, "alice", 100, api.ZeroTag)
	require.NoError(t, err)

	_, err = h.c.OwnerOf(h.ctx, 0)
	assert.True(t, errors.Is(err, api.ErrNotFound))
	assert.EqualError(t, err, "share 0: not found")

	err = h.c.Transfer(h.ctx, "bob", "carol", 1, 51)
	assert.True(t, errors.Is(err, api.ErrOwnershipViolation))
	assert.EqualError(t, err, "[1, 101) is owned by alice, not bob: ownership violation")

	err = h.c.Retag(h.ctx, 0, 10, api.ZeroTag)
	assert.True(t, errors.Is(err, api.ErrInvalidRange))
	assert.EqualError(t, err, "[0, 10): invalid range")

	_, err = h.c.Mint(h.ctx, "alice", 0, api.ZeroTag)
	assert.True(t, errors.Is(err, api.ErrInvalidAmount))

	_, err = h.c.RangesOf(h.ctx, "dave")
	assert.True(t, errors.Is(err, api.ErrNotFound))
	assert.EqualError(t, err, "owner dave: not found")
}

func TestDump(t *testing.T) {
	h := setup(t)

	_, err := h.c.Mint(h.ctx, "alice", 10, api.ZeroTag)
	require.NoError(t, err)
	_, err = h.c.Mint(h.ctx, "bob", 10, api.ZeroTag)
	require.NoError(t, err)

	d, err := h.c.Dump(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), d.Shares)
	assert.Equal(t, uint64(2), d.Holders)
	require.Len(t, d.Ranges, 2)
	assert.NoError(t, ledger.Validate(d.Ranges))
}

func TestEvents(t *testing.T) {
	h := setup(t)

	_, err := h.c.Mint(h.ctx, "alice", 10, api.ZeroTag)
	require.NoError(t, err)
	err = h.c.Transfer(h.ctx, "alice", "bob", 1, 6)
	require.NoError(t, err)

	es, err := h.c.Events(h.ctx, 0)
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, ledger.EventTransfer, es[0].Kind)
	assert.Equal(t, api.OwnerID("bob"), es[0].To)
	assert.Equal(t, ledger.EventMint, es[1].Kind)
	assert.False(t, es[0].Time.IsZero())
}

func TestDiscoverNothing(t *testing.T) {
	d := mock.New()

	_, err := Discover(context.Background(), d, "scrip")
	assert.EqualError(t, err, "discovery: no instances of scrip")
}

// ------------------------------------------------------------------ Harness --

type Harness struct {
	ctx context.Context
	c   *Client
}

func setup(t *testing.T) *Harness {
	ctx := context.Background()

	ring := journal.NewRing(16)
	ldg, err := ledger.New(memory.New(), ring)
	require.NoError(t, err)

	srv := grpc.NewServer()
	server.New(ldg, ring, nil, srv)

	listener := bufconn.Listen(1024 * 1024)

	go func() {
		if err := srv.Serve(listener); err != nil {
			panic(err)
		}
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.DialContext(ctx, "", grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}), grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock())
	require.NoError(t, err)

	return &Harness{
		ctx: ctx,
		c:   New(conn),
	}
}
