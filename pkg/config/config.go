// Package config holds the on-disk configuration of a ledger server. Flags
// override whatever the file says, so a config file is never required.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	// Addr is the address the gRPC server listens on.
	Addr string `json:"addr,omitempty"`

	// PubAddr is the address other machines reach the server on. It's what
	// gets registered with service discovery, so it can't be a wildcard.
	PubAddr string `json:"pub_addr,omitempty"`

	// MetricsAddr serves Prometheus metrics over HTTP. Empty disables the
	// endpoint.
	MetricsAddr string `json:"metrics_addr,omitempty"`

	// Store selects where ranges are persisted: memory, sqlite, or consul.
	Store string `json:"store,omitempty"`

	// SQLitePath is the database file used when Store is sqlite.
	SQLitePath string `json:"sqlite_path,omitempty"`

	// ConsulKey is the KV key holding the ranges when Store is consul.
	ConsulKey string `json:"consul_key,omitempty"`

	// JournalSize is how many recent mutations the server remembers for the
	// debug service.
	JournalSize int `json:"journal_size,omitempty"`

	// Discovery registers the server with the local Consul agent.
	Discovery bool `json:"discovery,omitempty"`
}

func Default() Config {
	return Config{
		Addr:        "localhost:5999",
		PubAddr:     "localhost:5999",
		Store:       "memory",
		SQLitePath:  "scrip.db",
		JournalSize: 1024,
	}
}

// Load reads a TOML config file over the defaults, so a partial file works.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to open config file")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file).SetTagName("json")

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to decode TOML config")
	}

	return cfg, nil
}
