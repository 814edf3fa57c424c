// Command hammer throws random mints, retags, transfers, and queries at a
// ledger server, and periodically dumps the whole partition to check that
// the invariants survived. It exits nonzero the moment anything looks wrong.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	consulapi "github.com/hashicorp/consul/api"
	"github.com/lthibault/jitterbug"
	"golang.org/x/sync/errgroup"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/client"
	consuldisc "github.com/scripledger/scrip/pkg/discovery/consul"
	"github.com/scripledger/scrip/pkg/ledger"
)

type Stats struct {
	mints     uint64
	retags    uint64
	transfers uint64
	bounced   uint64
	queries   uint64
	checks    uint64
}

func (s *Stats) Total() int {
	return int(s.mints + s.retags + s.transfers + s.bounced + s.queries)
}

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	addr := flag.String("addr", "localhost:5999", "ledger server address")
	useConsul := flag.Bool("consul", false, "resolve the server via the local consul agent instead of -addr")
	owners := flag.Int("owners", 8, "number of synthetic owners")
	mintQPS := flag.Uint("mint-qps", 5, "mints per second")
	retagQPS := flag.Uint("retag-qps", 10, "retags per second")
	transferQPS := flag.Uint("transfer-qps", 20, "transfers per second")
	queryQPS := flag.Uint("query-qps", 50, "point queries per second")
	checkEvery := flag.Duration("check", 5*time.Second, "how often to dump and verify the partition")
	flag.Parse()

	// Replace default logger.
	logger := log.New(os.Stdout, "", 0)
	*log.Default() = *logger

	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	ctxDial, cancelDial := context.WithTimeout(ctx, 3*time.Second)
	defer cancelDial()

	var c *client.Client
	var err error
	if *useConsul {
		disc, derr := consuldisc.New("scrip", "", consulapi.DefaultConfig(), nil)
		if derr != nil {
			exit(derr)
		}
		c, err = client.Discover(ctxDial, disc, "scrip")
	} else {
		c, err = client.Dial(ctxDial, *addr)
	}
	if err != nil {
		exit(err)
	}
	defer c.Close()

	h := &Hammer{
		c:      c,
		owners: *owners,
	}

	t := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	h.spawn(g, ctx, *mintQPS, h.mintOnce)
	h.spawn(g, ctx, *retagQPS, h.retagOnce)
	h.spawn(g, ctx, *transferQPS, h.transferOnce)
	h.spawn(g, ctx, *queryQPS, h.queryOnce)

	g.Go(func() error {
		return h.check(ctx, *checkEvery)
	})

	err = g.Wait()
	runTime := time.Since(t)

	s := &h.stats
	fmt.Printf("Ran for %s\n", runTime)
	fmt.Printf("- Mints: %d (%d/s)\n", s.mints, int(float64(s.mints)/runTime.Seconds()))
	fmt.Printf("- Retags: %d (%d/s)\n", s.retags, int(float64(s.retags)/runTime.Seconds()))
	fmt.Printf("- Transfers: %d (%d/s, %d bounced)\n", s.transfers, int(float64(s.transfers)/runTime.Seconds()), s.bounced)
	fmt.Printf("- Queries: %d (%d/s)\n", s.queries, int(float64(s.queries)/runTime.Seconds()))
	fmt.Printf("- Checks: %d\n", s.checks)
	fmt.Printf("- Total: %d (%d/s)\n", s.Total(), int(float64(s.Total())/runTime.Seconds()))

	if err != nil && !errors.Is(err, context.Canceled) {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

type Hammer struct {
	c      *client.Client
	owners int
	stats  Stats

	// Highest share ID known to be minted. Only grows, so any ID at or
	// below it must resolve to an owner forever.
	maxID uint64
}

// spawn starts a worker which calls f at roughly qps per second, jittered so
// that workers don't thump in lockstep.
func (h *Hammer) spawn(g *errgroup.Group, ctx context.Context, qps uint, f func(context.Context) error) {
	if qps == 0 {
		return
	}

	d := time.Duration(int(1*time.Second) / int(qps))

	// Jitter by 10%
	ticker := jitterbug.New(d, &jitterbug.Norm{Stdev: d / 10})

	g.Go(func() error {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil

			case <-ticker.C:
				if err := f(ctx); err != nil {
					// RPCs cut off by shutdown aren't failures.
					if ctx.Err() != nil {
						return nil
					}
					return err
				}
			}
		}
	})
}

func (h *Hammer) mintOnce(ctx context.Context) error {
	amount := uint64(1 + rand.Intn(1000))

	m, err := h.c.Mint(ctx, h.owner(), amount, h.tag())
	if err != nil {
		return fmt.Errorf("mint: %w", err)
	}

	atomic.AddUint64(&h.stats.mints, 1)
	h.observe(m.Stop - 1)
	return nil
}

func (h *Hammer) retagOnce(ctx context.Context) error {
	start, stop, ok := h.interval(256)
	if !ok {
		return nil
	}

	if err := h.c.Retag(ctx, start, stop, h.tag()); err != nil {
		return fmt.Errorf("retag: %w", err)
	}

	atomic.AddUint64(&h.stats.retags, 1)
	return nil
}

func (h *Hammer) transferOnce(ctx context.Context) error {
	start, stop, ok := h.interval(64)
	if !ok {
		return nil
	}

	// Ask who owns the first share, to give the transfer a fighting chance.
	// Someone else may own a later slice of the interval, or snatch this one
	// before the transfer lands, and then it bounces. That's the point.
	from, err := h.c.OwnerOf(ctx, start)
	if err != nil {
		return fmt.Errorf("ownerOf: %w", err)
	}

	err = h.c.Transfer(ctx, from, h.owner(), start, stop)
	switch {
	case err == nil:
		atomic.AddUint64(&h.stats.transfers, 1)
	case errors.Is(err, api.ErrOwnershipViolation):
		atomic.AddUint64(&h.stats.bounced, 1)
	default:
		return fmt.Errorf("transfer: %w", err)
	}

	return nil
}

func (h *Hammer) queryOnce(ctx context.Context) error {
	max := atomic.LoadUint64(&h.maxID)
	if max == 0 {
		return nil
	}

	id := api.ShareID(1 + uint64(rand.Int63n(int64(max))))

	// Minted shares never stop existing, so this must always resolve.
	if _, err := h.c.OwnerOf(ctx, id); err != nil {
		return fmt.Errorf("ownerOf(%d): %w", id, err)
	}

	if _, err := h.c.TagOf(ctx, id); err != nil {
		return fmt.Errorf("tagOf(%d): %w", id, err)
	}

	// Owners come and go as shares move around, so not found is fine here.
	if _, err := h.c.RangesOf(ctx, h.owner()); err != nil && !errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("rangesOf: %w", err)
	}

	atomic.AddUint64(&h.stats.queries, 1)
	return nil
}

// check fetches the whole partition and verifies the invariants the server
// is supposed to maintain no matter what we throw at it.
func (h *Hammer) check(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			d, err := h.c.Dump(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("dump: %w", err)
			}

			if err := ledger.Validate(d.Ranges); err != nil {
				return fmt.Errorf("invariants broken: %w", err)
			}

			var n uint64
			for _, r := range d.Ranges {
				n += r.Meta.Len()
			}
			if n != d.Shares {
				return fmt.Errorf("ranges cover %d shares, server says %d", n, d.Shares)
			}

			atomic.AddUint64(&h.stats.checks, 1)
			log.Printf("check ok: %d shares in %d ranges, %d holders", d.Shares, len(d.Ranges), d.Holders)
		}
	}
}

// observe bumps the known top of the ID space.
func (h *Hammer) observe(id api.ShareID) {
	for {
		cur := atomic.LoadUint64(&h.maxID)
		if uint64(id) <= cur || atomic.CompareAndSwapUint64(&h.maxID, cur, uint64(id)) {
			return
		}
	}
}

// interval returns a random non-empty interval within the minted ID space,
// at most maxLen shares long. Returns false until the first mint lands.
func (h *Hammer) interval(maxLen int) (api.ShareID, api.ShareID, bool) {
	max := atomic.LoadUint64(&h.maxID)
	if max == 0 {
		return 0, 0, false
	}

	start := 1 + uint64(rand.Int63n(int64(max)))
	stop := start + 1 + uint64(rand.Intn(maxLen))
	if stop > max+1 {
		stop = max + 1
	}

	return api.ShareID(start), api.ShareID(stop), true
}

func (h *Hammer) owner() api.OwnerID {
	return api.OwnerID(fmt.Sprintf("acct-%02d", rand.Intn(h.owners)))
}

// tag picks from a small palette, so that retags frequently give neighbors
// matching tags and force merges.
func (h *Hammer) tag() api.Tag {
	return api.Tag{0x00, byte(rand.Intn(4))}
}
