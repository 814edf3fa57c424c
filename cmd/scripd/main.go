package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/scripledger/scrip/pkg/config"
)

func main() {
	def := config.Default()

	confPath := flag.String("config", "", "path to TOML config file")
	addr := flag.String("addr", def.Addr, "address to start grpc server on")
	addrPub := flag.String("pub-addr", "", "address for clients to reach this (default: same as -addr)")
	metricsAddr := flag.String("metrics-addr", "", "address to serve prometheus metrics on (default: disabled)")
	store := flag.String("store", def.Store, "where to persist ranges: memory, sqlite, or consul")
	sqlitePath := flag.String("sqlite-path", def.SQLitePath, "database file for -store=sqlite")
	consulKey := flag.String("consul-key", "", "kv key for -store=consul (default: scrip/ranges)")
	journalSize := flag.Int("journal-size", def.JournalSize, "how many recent mutations to keep for debugging")
	disc := flag.Bool("discovery", false, "register with the local consul agent")
	flag.Parse()

	cfg := def
	if *confPath != "" {
		var err error
		cfg, err = config.Load(*confPath)
		if err != nil {
			exit(err)
		}
	}

	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "pub-addr":
			cfg.PubAddr = *addrPub
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		case "store":
			cfg.Store = *store
		case "sqlite-path":
			cfg.SQLitePath = *sqlitePath
		case "consul-key":
			cfg.ConsulKey = *consulKey
		case "journal-size":
			cfg.JournalSize = *journalSize
		case "discovery":
			cfg.Discovery = *disc
		}
	})

	if cfg.PubAddr == "" {
		cfg.PubAddr = cfg.Addr
	}

	// Replace default logger.
	// TODO: Switch to a better logging package.
	logger := log.New(os.Stdout, "", 0)
	*log.Default() = *logger

	cmd, err := New(cfg)
	if err != nil {
		exit(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	err = cmd.Run(ctx)
	if err != nil {
		exit(err)
	}
}

func exit(err error) {
	log.Fatalf("Error: %s", err)
}
