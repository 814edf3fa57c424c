package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang/protobuf/proto"
	consulapi "github.com/hashicorp/consul/api"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/scripledger/scrip/pkg/api"
	consuldisc "github.com/scripledger/scrip/pkg/discovery/consul"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

func main() {
	w := flag.CommandLine.Output()

	flag.Usage = func() {
		fmt.Fprintf(w, "Usage: %s [-addr=host:port] <action> [<args>]\n", os.Args[0])
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Action and args must be one of:\n")
		fmt.Fprintf(w, "  - mint <owner> <amount> [<tag>]\n")
		fmt.Fprintf(w, "  - retag <start> <stop> <tag>\n")
		fmt.Fprintf(w, "  - transfer <from> <to> <start> <stop>\n")
		fmt.Fprintf(w, "  - owner <shareID>\n")
		fmt.Fprintf(w, "  - tag <shareID>\n")
		fmt.Fprintf(w, "  - ranges <owner>\n")
		fmt.Fprintf(w, "  - dump\n")
		fmt.Fprintf(w, "  - events [<limit>]\n")
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Tags are hex, e.g. 0x01ff. Intervals are [start, stop): the stop\n")
		fmt.Fprintf(w, "share is not included.\n")
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "Flags:\n")
		flag.PrintDefaults()
	}

	addr := flag.String("addr", "localhost:5999", "ledger server address")
	useConsul := flag.Bool("consul", false, "resolve the server via the local consul agent instead of -addr")
	printReq := flag.Bool("request", false, "print gRPC request instead of sending it")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	// TODO: Catch signals for cancellation.
	ctx := context.Background()

	if *useConsul {
		disc, err := consuldisc.New("scrip", "", consulapi.DefaultConfig(), nil)
		if err != nil {
			fmt.Fprintf(w, "Error connecting to consul: %v\n", err)
			os.Exit(1)
		}

		rems, err := disc.Get("scrip")
		if err != nil {
			fmt.Fprintf(w, "Error resolving server: %v\n", err)
			os.Exit(1)
		}
		if len(rems) == 0 {
			fmt.Fprintf(w, "Error: no scrip servers registered\n")
			os.Exit(1)
		}

		*addr = rems[0].Addr()
	}

	ctxDial, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctxDial, *addr, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		fmt.Fprintf(w, "Error dialing server: %v\n", err)
		os.Exit(1)
	}

	action := flag.Arg(0)

	switch action {
	case "mint", "m":
		if flag.NArg() < 3 || flag.NArg() > 4 {
			fmt.Fprintf(w, "Usage: %s mint <owner> <amount> [<tag>]\n", os.Args[0])
			os.Exit(1)
		}

		amount, err := strconv.ParseUint(flag.Arg(2), 10, 64)
		if err != nil {
			fmt.Fprintf(w, "Invalid amount: %v\n", err)
			os.Exit(1)
		}

		var tag []byte
		if flag.NArg() == 4 {
			tag = parseTag(flag.Arg(3))
		}

		client := pb.NewLedgerClient(conn)
		cmdMint(*printReq, client, ctx, flag.Arg(1), amount, tag)

	case "retag":
		if flag.NArg() != 4 {
			fmt.Fprintf(w, "Usage: %s retag <start> <stop> <tag>\n", os.Args[0])
			os.Exit(1)
		}

		start, stop := parseInterval(flag.Arg(1), flag.Arg(2))
		tag := parseTag(flag.Arg(3))

		client := pb.NewLedgerClient(conn)
		cmdRetag(*printReq, client, ctx, start, stop, tag)

	case "transfer", "x":
		if flag.NArg() != 5 {
			fmt.Fprintf(w, "Usage: %s transfer <from> <to> <start> <stop>\n", os.Args[0])
			os.Exit(1)
		}

		start, stop := parseInterval(flag.Arg(3), flag.Arg(4))

		client := pb.NewLedgerClient(conn)
		cmdTransfer(*printReq, client, ctx, flag.Arg(1), flag.Arg(2), start, stop)

	case "owner", "o":
		if flag.NArg() != 2 {
			fmt.Fprintf(w, "Usage: %s owner <shareID>\n", os.Args[0])
			os.Exit(1)
		}

		client := pb.NewLedgerClient(conn)
		cmdOwner(*printReq, client, ctx, parseShareID(flag.Arg(1)))

	case "tag", "t":
		if flag.NArg() != 2 {
			fmt.Fprintf(w, "Usage: %s tag <shareID>\n", os.Args[0])
			os.Exit(1)
		}

		client := pb.NewLedgerClient(conn)
		cmdTag(*printReq, client, ctx, parseShareID(flag.Arg(1)))

	case "ranges":
		if flag.NArg() != 2 {
			fmt.Fprintf(w, "Usage: %s ranges <owner>\n", os.Args[0])
			os.Exit(1)
		}

		client := pb.NewLedgerClient(conn)
		cmdRanges(*printReq, client, ctx, flag.Arg(1))

	case "dump", "d":
		if flag.NArg() != 1 {
			fmt.Fprintf(w, "Usage: %s dump\n", os.Args[0])
			os.Exit(1)
		}

		client := pb.NewDebugClient(conn)
		cmdDump(*printReq, client, ctx)

	case "events", "e":
		if flag.NArg() > 2 {
			fmt.Fprintf(w, "Usage: %s events [<limit>]\n", os.Args[0])
			os.Exit(1)
		}

		var limit uint64
		if flag.NArg() == 2 {
			limit, err = strconv.ParseUint(flag.Arg(1), 10, 64)
			if err != nil {
				fmt.Fprintf(w, "Invalid limit: %v\n", err)
				os.Exit(1)
			}
		}

		client := pb.NewDebugClient(conn)
		cmdEvents(*printReq, client, ctx, limit)

	default:
		flag.Usage()
		os.Exit(1)
	}
}

func parseShareID(s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "Invalid shareID: %v\n", err)
		os.Exit(1)
	}

	return id
}

func parseInterval(s1, s2 string) (uint64, uint64) {
	return parseShareID(s1), parseShareID(s2)
}

func parseTag(s string) []byte {
	t, err := api.ParseTag(s)
	if err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "Invalid tag: %v\n", err)
		os.Exit(1)
	}

	return t.Bytes()
}

func cmdMint(printReq bool, client pb.LedgerClient, ctx context.Context, owner string, amount uint64, tag []byte) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &pb.MintRequest{
		Owner:  owner,
		Amount: amount,
		Tag:    tag,
	}

	if printReq {
		output(req)
		return
	}

	res, err := client.Mint(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Ledger.Mint returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdRetag(printReq bool, client pb.LedgerClient, ctx context.Context, start, stop uint64, tag []byte) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &pb.RetagRequest{
		Start: start,
		Stop:  stop,
		Tag:   tag,
	}

	if printReq {
		output(req)
		return
	}

	res, err := client.Retag(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Ledger.Retag returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdTransfer(printReq bool, client pb.LedgerClient, ctx context.Context, from, to string, start, stop uint64) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &pb.TransferRequest{
		From:  from,
		To:    to,
		Start: start,
		Stop:  stop,
	}

	if printReq {
		output(req)
		return
	}

	res, err := client.Transfer(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Ledger.Transfer returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdOwner(printReq bool, client pb.LedgerClient, ctx context.Context, id uint64) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req := &pb.OwnerOfRequest{Id: id}

	if printReq {
		output(req)
		return
	}

	res, err := client.OwnerOf(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Ledger.OwnerOf returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdTag(printReq bool, client pb.LedgerClient, ctx context.Context, id uint64) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req := &pb.TagOfRequest{Id: id}

	if printReq {
		output(req)
		return
	}

	res, err := client.TagOf(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Ledger.TagOf returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdRanges(printReq bool, client pb.LedgerClient, ctx context.Context, owner string) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &pb.RangesOfRequest{Owner: owner}

	if printReq {
		output(req)
		return
	}

	res, err := client.RangesOf(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Ledger.RangesOf returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdDump(printReq bool, client pb.DebugClient, ctx context.Context) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &pb.RangesListRequest{}

	if printReq {
		output(req)
		return
	}

	res, err := client.RangesList(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Debug.RangesList returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

func cmdEvents(printReq bool, client pb.DebugClient, ctx context.Context, limit uint64) {
	w := flag.CommandLine.Output()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req := &pb.EventsListRequest{Limit: limit}

	if printReq {
		output(req)
		return
	}

	res, err := client.EventsList(ctx, req)

	if err != nil {
		fmt.Fprintf(w, "Debug.EventsList returned: %v\n", err)
		os.Exit(1)
	}

	output(res)
}

// output renders a message as JSON. The generated messages predate the
// protoreflect API, so they go through the v1 bridge first.
func output(res proto.Message) {
	opts := protojson.MarshalOptions{
		Multiline:       true,
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}

	fmt.Println(opts.Format(proto.MessageV2(res)))
}
