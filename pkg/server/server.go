// Package server exposes a ledger over gRPC: the public Ledger service for
// mutations and point queries, and the Debug service for inspecting the
// whole partition and the recent mutation history.
package server

import (
	"google.golang.org/grpc"

	"github.com/scripledger/scrip/pkg/journal"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/scripledger/scrip/pkg/metrics"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

// Server forwards RPCs to a ledger. It doesn't own the listener; the caller
// decides where and when to serve.
type Server struct {
	ls *ledgerServer
	ds *debugServer
}

// New registers the ledger and debug services on the given gRPC server. The
// ring may be nil, in which case EventsList always returns nothing; met may
// be nil to record no metrics.
func New(ldg *ledger.Ledger, ring *journal.Ring, met *metrics.Metrics, srv *grpc.Server) *Server {
	s := &Server{
		ls: &ledgerServer{ldg: ldg, met: met},
		ds: &debugServer{ldg: ldg, ring: ring},
	}

	pb.RegisterLedgerServer(srv, s.ls)
	pb.RegisterDebugServer(srv, s.ds)

	return s
}
