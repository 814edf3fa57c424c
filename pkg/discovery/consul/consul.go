// Package consul registers a gRPC server with a Consul agent, health check
// included, and resolves service names through the catalog.
package consul

import (
	"fmt"
	"net"
	"strconv"
	"time"

	capi "github.com/hashicorp/consul/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	hv1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/scripledger/scrip/pkg/discovery"
)

type Discovery struct {
	svcName string
	addrPub string
	ident   string
	consul  *capi.Client
	srv     *grpc.Server
	hs      *health.Server
}

// getIdent derives a stable service ID from the public address. Unqualified
// local addresses collapse to just the port, so that several instances on one
// dev machine don't collide.
func getIdent(addr string) (string, error) {
	host, sPort, err := net.SplitHostPort(addr)
	if err != nil {
		return "", err
	}
	nPort, err := strconv.Atoi(sPort)
	if err != nil {
		return "", err
	}

	if host == "" || host == "localhost" || host == "127.0.0.1" {
		return fmt.Sprintf("%d", nPort), nil
	}

	return fmt.Sprintf("%s:%d", host, nPort), nil
}

// New returns a Discovery which will register the given gRPC server under
// serviceName, reachable at addrPub. The gRPC health service is registered on
// srv right away; Consul doesn't hear about it until Start. Clients which
// only want Get can pass a nil srv and an empty addrPub.
func New(serviceName, addrPub string, cfg *capi.Config, srv *grpc.Server) (*Discovery, error) {
	client, err := capi.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	d := &Discovery{
		svcName: serviceName,
		addrPub: addrPub,
		consul:  client,
		srv:     srv,
	}

	if addrPub != "" {
		d.ident, err = getIdent(addrPub)
		if err != nil {
			return nil, err
		}
	}

	if srv != nil {
		d.hs = health.NewServer()
		d.hs.SetServingStatus("", hv1.HealthCheckResponse_SERVING)
		hv1.RegisterHealthServer(d.srv, d.hs)
	}

	return d, nil
}

func (d *Discovery) Start() error {
	if d.ident == "" {
		return fmt.Errorf("can't register %s without a public address", d.svcName)
	}

	host, sPort, err := net.SplitHostPort(d.addrPub)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(sPort)
	if err != nil {
		return err
	}

	def := &capi.AgentServiceRegistration{
		Name: d.svcName,
		ID:   d.ident,

		// An empty host means the agent's own address, which is right for
		// unqualified dev listeners.
		Address: host,
		Port:    port,

		Check: &capi.AgentServiceCheck{
			GRPC: d.addrPub,

			// How long to wait between checks.
			Interval: (3 * time.Second).String(),

			// How long to wait for a response before giving up.
			Timeout: (1 * time.Second).String(),

			// How long to wait after a service becomes critical (i.e. starts
			// returning error, unhealthy responses, or timing out) before
			// removing it from service discovery. Might actually take longer
			// than this because of Consul implementation.
			DeregisterCriticalServiceAfter: (10 * time.Second).String(),
		},
	}

	return d.consul.Agent().ServiceRegister(def)
}

func (d *Discovery) Stop() error {
	return d.consul.Agent().ServiceDeregister(d.ident)
}

func (d *Discovery) Get(name string) ([]discovery.Remote, error) {
	res, _, err := d.consul.Catalog().Service(name, "", &capi.QueryOptions{})
	if err != nil {
		return []discovery.Remote{}, err
	}

	output := make([]discovery.Remote, len(res))
	for i, r := range res {
		output[i] = discovery.Remote{
			Ident: r.ServiceID,
			Host:  r.Address,
			Port:  r.ServicePort,
		}
	}

	return output, nil
}
