package server

import (
	"context"

	"github.com/scripledger/scrip/pkg/journal"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/scripledger/scrip/pkg/proto/conv"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

type debugServer struct {
	pb.UnsafeDebugServer
	ldg  *ledger.Ledger
	ring *journal.Ring
}

func (ds *debugServer) RangesList(ctx context.Context, req *pb.RangesListRequest) (*pb.RangesListResponse, error) {
	return &pb.RangesListResponse{
		Ranges:  conv.RangesToProto(ds.ldg.Ranges()),
		Shares:  ds.ldg.NumShares(),
		Holders: uint64(ds.ldg.Holders()),
	}, nil
}

func (ds *debugServer) EventsList(ctx context.Context, req *pb.EventsListRequest) (*pb.EventsListResponse, error) {
	if ds.ring == nil {
		return &pb.EventsListResponse{}, nil
	}

	entries := ds.ring.Recent(int(req.Limit))
	events := make([]*pb.Event, len(entries))
	for i, e := range entries {
		events[i] = conv.EventToProto(e)
	}

	return &pb.EventsListResponse{Events: events}, nil
}
