// Package client wraps the raw gRPC stubs in an API which speaks ledger
// types. Errors coming back over the wire are restored to the api sentinels,
// so errors.Is works the same whether the ledger is local or remote.
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/discovery"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/scripledger/scrip/pkg/proto/conv"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

type Client struct {
	conn *grpc.ClientConn
	lc   pb.LedgerClient
	dc   pb.DebugClient
}

// Dump is everything the debug service knows about the partition.
type Dump struct {
	Ranges  []api.Range
	Shares  uint64
	Holders uint64
}

// New wraps an existing connection. The caller keeps ownership of it; Close
// is a no-op.
func New(conn *grpc.ClientConn) *Client {
	return &Client{
		lc: pb.NewLedgerClient(conn),
		dc: pb.NewDebugClient(conn),
	}
}

// Dial connects to a ledger server and blocks until the connection is up or
// the context expires.
func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, err := grpc.DialContext(ctx, addr, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, err
	}

	c := New(conn)
	c.conn = conn
	return c, nil
}

// Discover resolves the given service name and dials the first instance it
// finds.
func Discover(ctx context.Context, disc discovery.Discoverable, name string) (*Client, error) {
	rems, err := disc.Get(name)
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}
	if len(rems) == 0 {
		return nil, fmt.Errorf("discovery: no instances of %s", name)
	}

	return Dial(ctx, rems[0].Addr())
}

// Close tears down the connection, if this client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

func (c *Client) Mint(ctx context.Context, owner api.OwnerID, amount uint64, tag api.Tag) (api.Meta, error) {
	res, err := c.lc.Mint(ctx, &pb.MintRequest{
		Owner:  conv.OwnerToProto(owner),
		Amount: amount,
		Tag:    conv.TagToProto(tag),
	})
	if err != nil {
		return api.Meta{}, conv.ErrorFromStatus(err)
	}

	return conv.MetaFromProto(res.Meta)
}

func (c *Client) Retag(ctx context.Context, start, stop api.ShareID, tag api.Tag) error {
	_, err := c.lc.Retag(ctx, &pb.RetagRequest{
		Start: uint64(start),
		Stop:  uint64(stop),
		Tag:   conv.TagToProto(tag),
	})

	return conv.ErrorFromStatus(err)
}

func (c *Client) Transfer(ctx context.Context, from, to api.OwnerID, start, stop api.ShareID) error {
	_, err := c.lc.Transfer(ctx, &pb.TransferRequest{
		From:  conv.OwnerToProto(from),
		To:    conv.OwnerToProto(to),
		Start: uint64(start),
		Stop:  uint64(stop),
	})

	return conv.ErrorFromStatus(err)
}

func (c *Client) OwnerOf(ctx context.Context, id api.ShareID) (api.OwnerID, error) {
	res, err := c.lc.OwnerOf(ctx, &pb.OwnerOfRequest{Id: uint64(id)})
	if err != nil {
		return api.ZeroOwner, conv.ErrorFromStatus(err)
	}

	return conv.OwnerFromProto(res.Owner)
}

func (c *Client) TagOf(ctx context.Context, id api.ShareID) (api.Tag, error) {
	res, err := c.lc.TagOf(ctx, &pb.TagOfRequest{Id: uint64(id)})
	if err != nil {
		return api.ZeroTag, conv.ErrorFromStatus(err)
	}

	return conv.TagFromProto(res.Tag)
}

func (c *Client) RangesOf(ctx context.Context, owner api.OwnerID) ([]api.Range, error) {
	res, err := c.lc.RangesOf(ctx, &pb.RangesOfRequest{Owner: conv.OwnerToProto(owner)})
	if err != nil {
		return nil, conv.ErrorFromStatus(err)
	}

	return conv.RangesFromProto(res.Ranges)
}

// Dump fetches the whole partition from the debug service.
func (c *Client) Dump(ctx context.Context) (Dump, error) {
	res, err := c.dc.RangesList(ctx, &pb.RangesListRequest{})
	if err != nil {
		return Dump{}, conv.ErrorFromStatus(err)
	}

	rs, err := conv.RangesFromProto(res.Ranges)
	if err != nil {
		return Dump{}, err
	}

	return Dump{
		Ranges:  rs,
		Shares:  res.Shares,
		Holders: res.Holders,
	}, nil
}

// Events fetches the most recent mutations, newest first. A limit of zero
// means as many as the server still remembers.
func (c *Client) Events(ctx context.Context, limit int) ([]ledger.Entry, error) {
	res, err := c.dc.EventsList(ctx, &pb.EventsListRequest{Limit: uint64(limit)})
	if err != nil {
		return nil, conv.ErrorFromStatus(err)
	}

	out := make([]ledger.Entry, len(res.Events))
	for i, e := range res.Events {
		entry, err := conv.EventFromProto(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out[i] = entry
	}

	return out, nil
}
