// Package discovery lets a ledger server announce itself by name, and lets
// clients find it without being handed an address.
package discovery

import "fmt"

// Remote is a service instance listening on some remote host and port.
// Ident must be stable within an installation, since it refers to a logical
// instance which may move between machines.
type Remote struct {
	Ident string
	Host  string
	Port  int
}

// Addr returns an address which can be dialled to connect to the remote.
func (r Remote) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Discoverable is an interface to make oneself discoverable (by name), and
// to discover other services by name.
//
// This is not a general-purpose service discovery interface! It's just the
// specific thing this project needs, to keep Consul details from getting
// all over the place.
type Discoverable interface {
	Start() error
	Stop() error
	Get(string) ([]Remote, error)
}
