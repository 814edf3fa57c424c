package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/scripledger/scrip/pkg/metrics"
	"github.com/scripledger/scrip/pkg/proto/conv"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

type ledgerServer struct {
	pb.UnsafeLedgerServer
	ldg *ledger.Ledger
	met *metrics.Metrics
}

func (ls *ledgerServer) Mint(ctx context.Context, req *pb.MintRequest) (*pb.MintResponse, error) {
	owner, err := conv.OwnerFromProto(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	tag, err := tagFromRequest(req.Tag)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	start := time.Now()
	m, err := ls.ldg.Mint(owner, req.Amount, tag)
	ls.doneMutation("mint", err, start)
	if err != nil {
		return nil, conv.ErrorToStatus(err)
	}

	return &pb.MintResponse{Meta: conv.MetaToProto(m)}, nil
}

func (ls *ledgerServer) Retag(ctx context.Context, req *pb.RetagRequest) (*pb.RetagResponse, error) {
	tag, err := tagFromRequest(req.Tag)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	start := time.Now()
	err = ls.ldg.Retag(api.ShareID(req.Start), api.ShareID(req.Stop), tag)
	ls.doneMutation("retag", err, start)
	if err != nil {
		return nil, conv.ErrorToStatus(err)
	}

	return &pb.RetagResponse{}, nil
}

func (ls *ledgerServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	from, err := conv.OwnerFromProto(req.From)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "missing: from")
	}

	to, err := conv.OwnerFromProto(req.To)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "missing: to")
	}

	start := time.Now()
	err = ls.ldg.Transfer(from, to, api.ShareID(req.Start), api.ShareID(req.Stop))
	ls.doneMutation("transfer", err, start)
	if err != nil {
		return nil, conv.ErrorToStatus(err)
	}

	return &pb.TransferResponse{}, nil
}

func (ls *ledgerServer) OwnerOf(ctx context.Context, req *pb.OwnerOfRequest) (*pb.OwnerOfResponse, error) {
	start := time.Now()
	owner, err := ls.ldg.OwnerOf(api.ShareID(req.Id))
	ls.done("owner_of", err, start)
	if err != nil {
		return nil, conv.ErrorToStatus(err)
	}

	return &pb.OwnerOfResponse{Owner: conv.OwnerToProto(owner)}, nil
}

func (ls *ledgerServer) TagOf(ctx context.Context, req *pb.TagOfRequest) (*pb.TagOfResponse, error) {
	start := time.Now()
	tag, err := ls.ldg.TagOf(api.ShareID(req.Id))
	ls.done("tag_of", err, start)
	if err != nil {
		return nil, conv.ErrorToStatus(err)
	}

	return &pb.TagOfResponse{Tag: conv.TagToProto(tag)}, nil
}

func (ls *ledgerServer) RangesOf(ctx context.Context, req *pb.RangesOfRequest) (*pb.RangesOfResponse, error) {
	owner, err := conv.OwnerFromProto(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	start := time.Now()
	rs, err := ls.ldg.RangesOf(owner)
	ls.done("ranges_of", err, start)
	if err != nil {
		return nil, conv.ErrorToStatus(err)
	}

	return &pb.RangesOfResponse{Ranges: conv.RangesToProto(rs)}, nil
}

func (ls *ledgerServer) done(op string, err error, start time.Time) {
	ls.met.ObserveOp(op, err, time.Since(start))
}

// doneMutation is like done, but also refreshes the partition gauges, which
// only change when a mutation succeeds.
func (ls *ledgerServer) doneMutation(op string, err error, start time.Time) {
	ls.done(op, err, start)
	if err == nil {
		ls.met.SetPartition(ls.ldg.NumShares(), ls.ldg.NumRanges(), ls.ldg.Holders())
	}
}

// tagFromRequest reads the tag field of a mint or retag request. Unlike tags
// inside Range messages, the field is optional; leaving it empty means the
// zero tag.
func tagFromRequest(p []byte) (api.Tag, error) {
	if len(p) == 0 {
		return api.ZeroTag, nil
	}

	return conv.TagFromProto(p)
}
