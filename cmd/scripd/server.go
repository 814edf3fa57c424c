package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"

	consulapi "github.com/hashicorp/consul/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/scripledger/scrip/pkg/config"
	"github.com/scripledger/scrip/pkg/discovery"
	consuldisc "github.com/scripledger/scrip/pkg/discovery/consul"
	"github.com/scripledger/scrip/pkg/journal"
	"github.com/scripledger/scrip/pkg/ledger"
	"github.com/scripledger/scrip/pkg/metrics"
	"github.com/scripledger/scrip/pkg/persister"
	consulpers "github.com/scripledger/scrip/pkg/persister/consul"
	"github.com/scripledger/scrip/pkg/persister/memory"
	sqlitepers "github.com/scripledger/scrip/pkg/persister/sqlite"
	"github.com/scripledger/scrip/pkg/server"
)

type Server struct {
	cfg config.Config

	srv  *grpc.Server
	ldg  *ledger.Ledger
	ring *journal.Ring
	pers persister.Persister
	disc discovery.Discoverable
}

func New(cfg config.Config) (*Server, error) {
	var opts []grpc.ServerOption
	srv := grpc.NewServer(opts...)

	// Register reflection service, so clients can introspect (for debugging).
	// TODO: Make this optional.
	reflection.Register(srv)

	pers, err := newPersister(cfg)
	if err != nil {
		return nil, err
	}

	ring := journal.NewRing(cfg.JournalSize)

	// This loads the ranges from storage, so will fail if the persister (e.g.
	// Consul) isn't available. Starting with an empty ledger should be rare.
	ldg, err := ledger.New(pers, journal.NewLog(ring))
	if err != nil {
		return nil, err
	}

	server.New(ldg, ring, metrics.New(), srv)

	var disc discovery.Discoverable
	if cfg.Discovery {
		disc, err = consuldisc.New("scrip", cfg.PubAddr, consulapi.DefaultConfig(), srv)
		if err != nil {
			return nil, err
		}
	}

	return &Server{
		cfg:  cfg,
		srv:  srv,
		ldg:  ldg,
		ring: ring,
		pers: pers,
		disc: disc,
	}, nil
}

func newPersister(cfg config.Config) (persister.Persister, error) {
	switch cfg.Store {
	case "", "memory":
		return memory.New(), nil

	case "sqlite":
		return sqlitepers.Open(cfg.SQLitePath)

	case "consul":
		client, err := consulapi.NewClient(consulapi.DefaultConfig())
		if err != nil {
			return nil, err
		}
		return consulpers.New(client, cfg.ConsulKey), nil
	}

	return nil, fmt.Errorf("unknown store: %q", cfg.Store)
}

func (s *Server) Run(ctx context.Context) error {

	// For the gRPC server.
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	log.Printf("listening on: %s", s.cfg.Addr)

	// Start the gRPC server in a background routine.
	errChan := make(chan error)
	go func() {
		err := s.srv.Serve(lis)
		if err != nil {
			errChan <- err
		}
		close(errChan)
	}()

	// Serve metrics over HTTP, if enabled.
	var msrv *http.Server
	if s.cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		msrv = &http.Server{Addr: s.cfg.MetricsAddr, Handler: mux}

		log.Printf("metrics on: %s", s.cfg.MetricsAddr)
		go func() {
			if err := msrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server: %s", err)
			}
		}()
	}

	// Make the server discoverable.
	if s.disc != nil {
		if err := s.disc.Start(); err != nil {
			return err
		}
	}

	// Block until context is cancelled, indicating that caller wants
	// shutdown.
	<-ctx.Done()

	// Let in-flight RPCs finish and then stop. errChan will contain the
	// error returned by srv.Serve (above) or be closed with no error.
	s.srv.GracefulStop()
	err = <-errChan
	if err != nil {
		return err
	}

	if msrv != nil {
		if err := msrv.Close(); err != nil {
			return err
		}
	}

	// Remove ourselves from service discovery. Not strictly necessary, but
	// lets clients move on quicker.
	if s.disc != nil {
		if err := s.disc.Stop(); err != nil {
			return err
		}
	}

	if c, ok := s.pers.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}

	return nil
}
